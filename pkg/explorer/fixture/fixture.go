// Package fixture reads and writes folder trees as YAML or JSON documents.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/datatug/buftug/pkg/explorer"
	"gopkg.in/yaml.v3"
)

var ErrEmptyName = errors.New("name is required")

type folderDoc struct {
	Name    string      `yaml:"name" json:"name"`
	Extra   any         `yaml:"extra,omitempty" json:"extra,omitempty"`
	Folders []folderDoc `yaml:"folders,omitempty" json:"folders,omitempty"`
	Files   []fileDoc   `yaml:"files,omitempty" json:"files,omitempty"`
}

type fileDoc struct {
	Name    string `yaml:"name" json:"name"`
	Extra   any    `yaml:"extra,omitempty" json:"extra,omitempty"`
	Content string `yaml:"content" json:"content"`
}

// decoderFactoryFor picks the decoder by file extension. Anything that is
// not .json is read as YAML.
func decoderFactoryFor(filePath string) func(r io.Reader) Decoder {
	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		return jsonDecoderFactory
	}
	return yamlDecoderFactory
}

// Load reads a tree from a fixture file.
func Load(filePath string) (*explorer.Folder, error) {
	var doc folderDoc
	if err := ReadFile(filePath, true, &doc, decoderFactoryFor(filePath)); err != nil {
		return nil, fmt.Errorf("failed to read tree fixture %s: %w", filePath, err)
	}
	return toFolder(doc, nil)
}

// Decode reads a tree from r.
func Decode(r io.Reader) (*explorer.Folder, error) {
	var doc folderDoc
	if err := yamlDecoderFactory(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode tree fixture: %w", err)
	}
	return toFolder(doc, nil)
}

// Encode writes root to w as YAML.
func Encode(w io.Writer, root *explorer.Folder) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(fromFolder(root)); err != nil {
		return err
	}
	return encoder.Close()
}

func toFolder(doc folderDoc, p explorer.NodePath) (*explorer.Folder, error) {
	if doc.Name == "" {
		return nil, fmt.Errorf("folder at %s: %w", p, ErrEmptyName)
	}
	folder := &explorer.Folder{
		Metadata: explorer.Metadata{Name: doc.Name, Extra: doc.Extra},
	}
	for i, sub := range doc.Folders {
		subFolder, err := toFolder(sub, p.Child(i))
		if err != nil {
			return nil, err
		}
		folder.SubFolders = append(folder.SubFolders, subFolder)
	}
	for i, f := range doc.Files {
		if f.Name == "" {
			return nil, fmt.Errorf("file #%d in folder at %s: %w", i, p, ErrEmptyName)
		}
		folder.Files = append(folder.Files, &explorer.File{
			Content:  f.Content,
			Metadata: explorer.Metadata{Name: f.Name, Extra: f.Extra},
		})
	}
	return folder, nil
}

func fromFolder(folder *explorer.Folder) folderDoc {
	doc := folderDoc{
		Name:  folder.Metadata.Name,
		Extra: folder.Metadata.Extra,
	}
	for _, sub := range folder.SubFolders {
		doc.Folders = append(doc.Folders, fromFolder(sub))
	}
	for _, f := range folder.Files {
		doc.Files = append(doc.Files, fileDoc{
			Name:    f.Metadata.Name,
			Extra:   f.Metadata.Extra,
			Content: f.Content,
		})
	}
	return doc
}
