package models

// Puzzle represents one riddle-gated lock in the visitor's sequential flow.
// The catalog is static and ordered; IDs form a contiguous range 1..N and the
// last ID is the final lock.
type Puzzle struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle"`
	Riddle          string   `json:"riddle"`
	Hint            string   `json:"hint"`
	Answer          string   `json:"-"`
	AcceptedAnswers []string `json:"-"`
}

// Puzzles is the build-time catalog. Answers never leave the server; the
// client verifies through the check endpoint. The accepted sets for locks 1
// and 3 deliberately widen the canonical answer with an article-prefixed
// variant ("a map", "a joke").
var Puzzles = []Puzzle{
	{
		ID:       1,
		Title:    "The First Lock",
		Subtitle: "Every heist begins with reconnaissance",
		Riddle:   "I have cities, but no houses live there. I have mountains, but no trees grow there. I have water, but no fish swim there. I have roads, but no cars drive there. What am I?",
		Hint:     "You'd need one to plan any heist...",
		Answer:   "map",
		AcceptedAnswers: []string{
			"map",
			"a map",
		},
	},
	{
		ID:       2,
		Title:    "The Second Lock",
		Subtitle: "Bypass the security system",
		Riddle:   "The more you take, the more you leave behind. What am I?",
		Hint:     "Be careful not to leave these at the crime scene...",
		Answer:   "footsteps",
	},
	{
		ID:       3,
		Title:    "The Final Lock",
		Subtitle: "Crack the vault",
		Riddle:   "I can be cracked, made, told, and played. What am I?",
		Hint:     "Something that makes people laugh...",
		Answer:   "joke",
		AcceptedAnswers: []string{
			"joke",
			"a joke",
		},
	},
}

// FindPuzzle returns the puzzle with the given ID, or nil if it is unknown
func FindPuzzle(id int) *Puzzle {
	for i := range Puzzles {
		if Puzzles[i].ID == id {
			return &Puzzles[i]
		}
	}
	return nil
}
