package state

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nikbrunner/kbtest/internal/model"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
)

// Envelope is an action as written in a script file: a type string plus an
// untyped payload. JSON documents are accepted as well since they are YAML.
type Envelope struct {
	Type    string    `yaml:"type"`
	Payload yaml.Node `yaml:"payload"`
}

// ParseScript reads a list of envelopes.
func ParseScript(r io.Reader) ([]Envelope, error) {
	var envelopes []Envelope
	if err := yaml.NewDecoder(r).Decode(&envelopes); err != nil {
		if errors.Is(err, io.EOF) {
			return []Envelope{}, nil
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return envelopes, nil
}

var shortNames = map[string]ActionType{}

func init() {
	for _, t := range []ActionType{
		TypeSetLoading, TypeSetError, TypeAddProject, TypeSetProjects,
		TypeSetCurrentProject, TypeUpdateProject, TypeDeleteProject,
		TypeAddSuite, TypeSetSuites, TypeSetCurrentSuite, TypeUpdateSuite,
		TypeDeleteSuite, TypeClearSuites,
	} {
		shortNames[string(t)] = t
		shortNames[strings.TrimPrefix(string(t), "projects/")] = t
	}
}

// DecodeAction turns an envelope into a typed Action. Entity payloads must
// pass model validation; anything malformed is rejected with
// ErrInvalidPayload.
func DecodeAction(env Envelope) (Action, error) {
	t, ok := shortNames[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}

	a, err := decodePayload(t, &env.Payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", t, ErrInvalidPayload, err)
	}
	return a, nil
}

func decodePayload(t ActionType, n *yaml.Node) (Action, error) {
	switch t {
	case TypeSetLoading:
		var v bool
		if err := decodeScalar(n, "!!bool", &v); err != nil {
			return nil, err
		}
		return SetLoading{Loading: v}, nil

	case TypeSetError:
		if isNull(n) {
			return ClearErrorAction(), nil
		}
		msg, err := decodeText(n)
		if err != nil {
			return nil, err
		}
		return SetErrorAction(msg), nil

	case TypeAddProject, TypeUpdateProject:
		p, err := decodeProject(n)
		if err != nil {
			return nil, err
		}
		if t == TypeAddProject {
			return AddProject{Project: p}, nil
		}
		return UpdateProject{Project: p}, nil

	case TypeSetCurrentProject:
		if isNull(n) {
			return SetCurrentProject{}, nil
		}
		p, err := decodeProject(n)
		if err != nil {
			return nil, err
		}
		return SelectProject(p), nil

	case TypeSetProjects:
		items, err := sequence(n)
		if err != nil {
			return nil, err
		}
		projects := make([]model.Project, 0, len(items))
		for i, item := range items {
			p, err := decodeProject(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			projects = append(projects, p)
		}
		return SetProjects{Projects: projects}, nil

	case TypeDeleteProject, TypeDeleteSuite:
		id, err := decodeText(n)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(id) == "" {
			return nil, model.ErrMissingID
		}
		if t == TypeDeleteProject {
			return DeleteProject{ID: id}, nil
		}
		return DeleteSuite{ID: id}, nil

	case TypeAddSuite, TypeUpdateSuite:
		s, err := decodeSuite(n)
		if err != nil {
			return nil, err
		}
		if t == TypeAddSuite {
			return AddSuite{Suite: s}, nil
		}
		return UpdateSuite{Suite: s}, nil

	case TypeSetCurrentSuite:
		if isNull(n) {
			return SetCurrentSuite{}, nil
		}
		s, err := decodeSuite(n)
		if err != nil {
			return nil, err
		}
		return SelectSuite(s), nil

	case TypeSetSuites:
		items, err := sequence(n)
		if err != nil {
			return nil, err
		}
		suites := make([]model.Suite, 0, len(items))
		for i, item := range items {
			s, err := decodeSuite(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			suites = append(suites, s)
		}
		return SetSuites{Suites: suites}, nil

	case TypeClearSuites:
		if !isNull(n) {
			return nil, errors.New("clearSuites takes no payload")
		}
		return ClearSuites{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, t)
}

// projectPayload and suitePayload keep timestamps as strings so quoted and
// unquoted YAML timestamps decode the same way.
type projectPayload struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	CreatedAt   string `yaml:"createdAt"`
	UpdatedAt   string `yaml:"updatedAt"`
}

type suitePayload struct {
	ID          string `yaml:"id"`
	ProjectID   string `yaml:"projectId"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	CreatedAt   string `yaml:"createdAt"`
	UpdatedAt   string `yaml:"updatedAt"`
	Stats       *struct {
		Passed     int `yaml:"passed"`
		Failed     int `yaml:"failed"`
		Pending    int `yaml:"pending"`
		TotalTests int `yaml:"totalTests"`
	} `yaml:"stats"`
}

var (
	projectFields = []string{"id", "name", "description", "createdAt", "updatedAt"}
	suiteFields   = []string{"id", "projectId", "name", "description", "createdAt", "updatedAt", "stats"}
)

func decodeProject(n *yaml.Node) (model.Project, error) {
	var raw projectPayload
	if err := decodeMapping(n, projectFields, &raw); err != nil {
		return model.Project{}, err
	}

	createdAt, updatedAt, err := parseTimestamps(raw.CreatedAt, raw.UpdatedAt)
	if err != nil {
		return model.Project{}, err
	}

	p := model.Project{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if err := p.Validate(); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

func decodeSuite(n *yaml.Node) (model.Suite, error) {
	var raw suitePayload
	if err := decodeMapping(n, suiteFields, &raw); err != nil {
		return model.Suite{}, err
	}

	createdAt, updatedAt, err := parseTimestamps(raw.CreatedAt, raw.UpdatedAt)
	if err != nil {
		return model.Suite{}, err
	}

	s := model.Suite{
		ID:          raw.ID,
		ProjectID:   raw.ProjectID,
		Name:        raw.Name,
		Description: raw.Description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	if raw.Stats != nil {
		s.Stats = model.Stats{
			Passed:     raw.Stats.Passed,
			Failed:     raw.Stats.Failed,
			Pending:    raw.Stats.Pending,
			TotalTests: raw.Stats.TotalTests,
		}
	}
	if err := s.Validate(); err != nil {
		return model.Suite{}, err
	}
	return s, nil
}

func parseTimestamps(created, updated string) (time.Time, time.Time, error) {
	createdAt, err := parseTimestamp("createdAt", created)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	updatedAt, err := parseTimestamp("updatedAt", updated)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return createdAt, updatedAt, nil
}

func parseTimestamp(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%s: %w", field, model.ErrMissingTimestamp)
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", field, err)
	}
	return t, nil
}

// decodeMapping decodes a mapping node into out after rejecting keys outside
// allowed.
func decodeMapping(n *yaml.Node, allowed []string, out any) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("expected an object, got %s", kindName(n))
	}
	for i := 0; i < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("unknown field %q", key)
		}
	}
	return n.Decode(out)
}

func decodeScalar(n *yaml.Node, tag string, out any) error {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != tag {
		return fmt.Errorf("expected %s, got %s", strings.TrimPrefix(tag, "!!"), kindName(n))
	}
	return n.Decode(out)
}

// decodeText reads an id or message. Numbers are taken as written, matching
// how string fields inside entity payloads decode; null and booleans are
// rejected.
func decodeText(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("expected str, got %s", kindName(n))
	}
	switch n.ShortTag() {
	case "!!null", "!!bool":
		return "", fmt.Errorf("expected str, got %s", kindName(n))
	}
	return n.Value, nil
}

func sequence(n *yaml.Node) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list, got %s", kindName(n))
	}
	return n.Content, nil
}

// isNull reports whether the payload is absent or an explicit null.
func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case 0:
		return "nothing"
	case yaml.ScalarNode:
		return strings.TrimPrefix(n.ShortTag(), "!!")
	case yaml.MappingNode:
		return "object"
	case yaml.SequenceNode:
		return "list"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
