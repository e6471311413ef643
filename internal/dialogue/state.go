// Package dialogue implements the guided resume-collection conversation as
// an explicit finite-state machine. One session holds one in-progress resume
// record; steps advance in a fixed linear order and the record is consumed
// exactly once, by the renderer, when the final step completes.
package dialogue

// State identifies the collection step a session is currently waiting on.
type State int

// Collection steps in their fixed linear order. There is no backward
// transition and no skip, except that the projects step accepts a sentinel
// "skip" token.
const (
	StateName State = iota
	StateEmail
	StatePhone
	StateEducation
	StateExperience
	StateSkills
	StateProjects
	StateTemplate
	StateFormat
)

var stateNames = map[State]string{
	StateName:       "name",
	StateEmail:      "email",
	StatePhone:      "phone",
	StateEducation:  "education",
	StateExperience: "experience",
	StateSkills:     "skills",
	StateProjects:   "projects",
	StateTemplate:   "template",
	StateFormat:     "format",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// EventKind tags the variants of dialogue input.
type EventKind int

// Input variants delivered by the dialogue adapter.
const (
	// EventStart greets the user without touching session state.
	EventStart EventKind = iota
	// EventBuild begins a fresh collection run, replacing any session in
	// progress.
	EventBuild
	// EventText carries free text for the collection steps.
	EventText
	// EventSelect carries a discrete choice for the template and format
	// steps.
	EventSelect
)

// Event is one unit of dialogue input. Text is set for EventText, Selection
// for EventSelect.
type Event struct {
	Kind      EventKind
	Text      string
	Selection string
}

// Choice is one option of a discrete selection step.
type Choice struct {
	ID    string
	Label string
}

// Reply is one outbound message produced by the state machine. Choices, when
// non-empty, are presented as buttons rather than free text. Document, when
// set, is a rendered resume to deliver.
type Reply struct {
	Text     string
	Choices  []Choice
	Document *Document
}

// Document is a rendered resume handed back to the adapter for delivery.
type Document struct {
	Data     []byte
	Filename string
}
