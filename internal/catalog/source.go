package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"folio.dev/internal/models"
)

// Source produces the raw project list
type Source interface {
	Load(ctx context.Context) ([]models.Project, error)
	String() string
}

// FileSource reads a JSON or YAML file; the format follows the extension
type FileSource struct {
	Path string
}

// String names the file in logs
func (s FileSource) String() string { return s.Path }

// Load reads and decodes the file
func (s FileSource) Load(ctx context.Context) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	list, err := Decode(data, filepath.Ext(s.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	return list, nil
}

// DefaultMaxSourceBytes caps a remote project file
const DefaultMaxSourceBytes int64 = 1 << 20

// HTTPSource fetches the list once from a static URL
type HTTPSource struct {
	URL    string
	Client *http.Client
	// MaxBytes caps the body; zero means DefaultMaxSourceBytes
	MaxBytes int64
}

// String names the URL in logs
func (s HTTPSource) String() string { return s.URL }

// Load issues a single GET and decodes the body as JSON
func (s HTTPSource) Load(ctx context.Context) ([]models.Project, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", s.URL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", s.URL, resp.StatusCode)
	}
	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxSourceBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.URL, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("failed to read %s: body exceeds %d bytes", s.URL, limit)
	}
	list, err := Decode(data, ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.URL, err)
	}
	return list, nil
}

// projectList is the wrapped form {"projects": [...]}
type projectList struct {
	Projects []models.Project `json:"projects" yaml:"projects"`
}

// Decode parses a project list. Both a bare array and an object with a
// "projects" key are accepted
func Decode(data []byte, ext string) ([]models.Project, error) {
	data = bytes.TrimSpace(data)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeJSON(data)
	}
}

func decodeJSON(data []byte) ([]models.Project, error) {
	if len(data) > 0 && data[0] == '{' {
		var wrapped projectList
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		return nonNil(wrapped.Projects), nil
	}
	var list []models.Project
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

func decodeYAML(data []byte) ([]models.Project, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return []models.Project{}, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.MappingNode {
		var wrapped projectList
		if err := root.Decode(&wrapped); err != nil {
			return nil, err
		}
		return nonNil(wrapped.Projects), nil
	}
	var list []models.Project
	if err := root.Decode(&list); err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

func nonNil(list []models.Project) []models.Project {
	if list == nil {
		return []models.Project{}
	}
	return list
}
