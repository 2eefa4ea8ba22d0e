package level

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Collection is a set of levels loaded from an .slc file.
type Collection struct {
	Title       string
	Description string
	Levels      []*Level
}

// slc mirrors the SokobanLevels XML schema used by .slc collection files.
type slcFile struct {
	XMLName     xml.Name      `xml:"SokobanLevels"`
	Title       string        `xml:"Title"`
	Description string        `xml:"Description"`
	Collection  slcCollection `xml:"LevelCollection"`
}

type slcCollection struct {
	Levels []slcLevel `xml:"Level"`
}

type slcLevel struct {
	ID    string   `xml:"Id,attr"`
	Lines []string `xml:"L"`
}

// LoadCollection reads an .slc collection file. Files in the wild sometimes
// carry junk ahead of the XML declaration; everything before the first
// '<?xml' (or the root element, when there is no declaration) is discarded.
// Levels that fail to parse are skipped rather than failing the whole file.
func LoadCollection(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}
	return ParseCollection(data)
}

// ParseCollection parses .slc bytes. See LoadCollection.
func ParseCollection(data []byte) (*Collection, error) {
	text := string(data)
	if i := strings.Index(text, "<?xml"); i > 0 {
		text = text[i:]
	} else if i < 0 {
		if j := strings.Index(text, "<SokobanLevels"); j > 0 {
			text = text[j:]
		}
	}

	var f slcFile
	if err := xml.Unmarshal([]byte(text), &f); err != nil {
		return nil, fmt.Errorf("parse collection: %w", err)
	}

	c := &Collection{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
	}
	for i, raw := range f.Collection.Levels {
		if len(raw.Lines) == 0 {
			continue
		}
		lvl, err := Parse(raw.Lines)
		if err != nil {
			continue
		}
		lvl.ID = raw.ID
		if lvl.ID == "" {
			lvl.ID = fmt.Sprintf("Level_%d", i+1)
		}
		lvl.Number = len(c.Levels) + 1
		c.Levels = append(c.Levels, lvl)
	}
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("collection %q contains no usable levels", c.Title)
	}
	return c, nil
}

// Level returns a level by its 1-based number, or nil.
func (c *Collection) Level(number int) *Level {
	if number < 1 || number > len(c.Levels) {
		return nil
	}
	return c.Levels[number-1]
}

// Count returns the number of levels in the collection.
func (c *Collection) Count() int {
	return len(c.Levels)
}
