package dialogue

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder-bot/internal/enrichment"
	"github.com/jonathan/resume-builder-bot/internal/parsing"
	"github.com/jonathan/resume-builder-bot/internal/types"
)

// maxJobSuggestions caps the recommendation list shown after delivery.
const maxJobSuggestions = 5

// skipToken lets the user leave the optional projects step empty.
const skipToken = "skip"

// Renderer turns a completed resume record into a deliverable document.
type Renderer interface {
	Render(resume *types.Resume) (*Document, error)
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(resume *types.Resume) (*Document, error)

// Render implements Renderer.
func (f RendererFunc) Render(resume *types.Resume) (*Document, error) {
	return f(resume)
}

// Engine is the session state machine. It owns each session's record for the
// session's lifetime, advances it step by step, and hands the completed
// record to the renderer exactly once.
//
// The engine assumes the adapter serializes inputs per session: one input per
// session at any instant. Distinct sessions are independent and may be
// processed concurrently.
type Engine struct {
	store    *Store
	renderer Renderer
	log      *zap.Logger
}

// NewEngine creates a dialogue engine backed by the given session store and
// renderer.
func NewEngine(store *Store, renderer Renderer, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: store, renderer: renderer, log: log}
}

// ProcessInput applies one input event to a session and returns the replies
// to deliver. Input that does not fit the session's current step never
// advances the machine; the returned replies re-prompt instead.
func (e *Engine) ProcessInput(sessionID string, event Event) []Reply {
	switch event.Kind {
	case EventStart:
		return []Reply{{Text: welcomeMessage}}
	case EventBuild:
		e.store.Put(sessionID, &Session{State: StateName})
		return []Reply{promptFor(StateName)}
	case EventText:
		return e.handleText(sessionID, event.Text)
	case EventSelect:
		return e.handleSelection(sessionID, event.Selection)
	default:
		return []Reply{{Text: buildHintMessage}}
	}
}

// handleText advances a free-text collection step.
func (e *Engine) handleText(sessionID string, text string) []Reply {
	session, ok := e.store.Get(sessionID)
	if !ok {
		return []Reply{{Text: buildHintMessage}}
	}

	switch session.State {
	case StateName:
		session.Resume.FullName = text
		session.State = StateEmail
	case StateEmail:
		session.Resume.Email = text
		session.State = StatePhone
	case StatePhone:
		session.Resume.Phone = text
		session.State = StateEducation
	case StateEducation:
		session.Resume.Education = parsing.ParseEducation(text)
		session.State = StateExperience
	case StateExperience:
		session.Resume.Experience = parsing.ParseExperience(text)
		session.State = StateSkills
	case StateSkills:
		session.Resume.Skills = parsing.ParseSkills(text)
		session.State = StateProjects
	case StateProjects:
		if strings.EqualFold(strings.TrimSpace(text), skipToken) {
			session.Resume.Projects = []types.ProjectEntry{}
		} else {
			session.Resume.Projects = parsing.ParseProjects(text)
		}
		session.State = StateTemplate
	case StateTemplate, StateFormat:
		// Free text during a selection step does not advance the machine.
		return []Reply{promptFor(session.State)}
	}

	e.store.Put(sessionID, session)
	return []Reply{promptFor(session.State)}
}

// handleSelection applies a discrete choice to one of the two selection
// steps. A selection outside the closed set, or during a free-text step, is
// a protocol violation from the adapter and never advances the machine.
func (e *Engine) handleSelection(sessionID string, selection string) []Reply {
	session, ok := e.store.Get(sessionID)
	if !ok {
		return []Reply{{Text: buildHintMessage}}
	}

	switch session.State {
	case StateTemplate:
		if !types.ValidTemplate(selection) {
			return []Reply{promptFor(StateTemplate)}
		}
		session.Resume.Template = types.Template(selection)
		session.State = StateFormat
		e.store.Put(sessionID, session)
		return []Reply{promptFor(StateFormat)}
	case StateFormat:
		if !types.ValidFormat(selection) {
			return []Reply{promptFor(StateFormat)}
		}
		session.Resume.Format = types.Format(selection)
		return e.complete(sessionID, session)
	default:
		return []Reply{promptFor(session.State)}
	}
}

// complete runs the terminal transition: derive the summary and enhanced
// skills, render the record, and reset the session. The reset happens before
// rendering so a render failure can never leak state into the next build.
func (e *Engine) complete(sessionID string, session *Session) []Reply {
	e.store.Delete(sessionID)

	resume := session.Resume
	resume.Summary = enrichment.Summarize(resume.FullName, resume.Skills)
	resume.EnhancedSkills = enrichment.EnhanceSkills(resume.Skills)

	replies := []Reply{{Text: processingMessage}}

	doc, err := e.renderer.Render(&resume)
	if err != nil {
		e.log.Error("resume rendering failed",
			zap.String("session_id", sessionID),
			zap.String("format", string(resume.Format)),
			zap.Error(err))
		replies = append(replies,
			Reply{Text: fmt.Sprintf(renderFailureMessage, err)},
			Reply{Text: closingMessage})
		return replies
	}

	e.log.Info("resume rendered",
		zap.String("session_id", sessionID),
		zap.String("template", string(resume.Template)),
		zap.String("format", string(resume.Format)),
		zap.String("filename", doc.Filename),
		zap.Int("bytes", len(doc.Data)))

	replies = append(replies,
		Reply{Text: documentCaption, Document: doc},
		Reply{Text: e.jobSuggestions(resume.Skills)},
		Reply{Text: closingMessage})
	return replies
}

// jobSuggestions formats the recommendation message from the user's raw
// skill list (not the enhanced one).
func (e *Engine) jobSuggestions(skills []string) string {
	jobs := enrichment.RecommendJobs(skills)
	if len(jobs) > maxJobSuggestions {
		jobs = jobs[:maxJobSuggestions]
	}

	var sb strings.Builder
	sb.WriteString(jobsHeader)
	for _, job := range jobs {
		sb.WriteString("• ")
		sb.WriteString(job)
		sb.WriteString("\n")
	}
	return sb.String()
}
