// Config persistence. Updates rewrite only the targeted section through
// yaml.Node so comments and formatting elsewhere in the file survive.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// SaveBookmarks replaces the bookmarks section in the config file.
func SaveBookmarks(configPath string, bookmarks []string) error {
	return saveSection(configPath, "bookmarks", buildBookmarksNode(bookmarks))
}

// AddBookmark appends a bookmark and saves. Duplicate paths are a no-op.
func AddBookmark(configPath string, path string, existing []string) error {
	if slices.Contains(existing, path) {
		return nil
	}
	return SaveBookmarks(configPath, append(slices.Clone(existing), path))
}

// RemoveBookmark deletes a bookmark and saves.
func RemoveBookmark(configPath string, path string, existing []string) error {
	updated := make([]string, 0, len(existing))
	for _, b := range existing {
		if b != path {
			updated = append(updated, b)
		}
	}
	if len(updated) == len(existing) {
		return fmt.Errorf("bookmark not found: %s", path)
	}
	return SaveBookmarks(configPath, updated)
}

// SaveSyntaxColors replaces the syntax section in the config file.
func SaveSyntaxColors(configPath string, colors map[string]string) error {
	return saveSection(configPath, "syntax", buildSyntaxNode(colors))
}

// saveSection replaces one top-level key in the YAML document, creating the
// document or the key when missing, then writes the file atomically.
func saveSection(configPath, key string, value *yaml.Node) error {
	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: key},
						value,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == key {
					root.Content[i+1] = value
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: key},
					value,
				)
			}
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeFileAtomic(configPath, buf.Bytes())
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it over the destination.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".justcode.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func buildBookmarksNode(bookmarks []string) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(bookmarks)),
	}
	for _, path := range bookmarks {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: path})
	}
	return node
}

func buildSyntaxNode(colors map[string]string) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: make([]*yaml.Node, 0, len(colors)*2),
	}
	keys := make([]string, 0, len(colors))
	for key := range colors {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: colors[key], Style: yaml.DoubleQuotedStyle},
		)
	}
	return node
}
