package suppression

import (
	"os"

	"github.com/arthur-debert/ruleset/pkg/errors"
	"github.com/arthur-debert/ruleset/pkg/logging"
	"github.com/beevik/etree"
)

// Load reads a suppressions file from disk.
func Load(path string) ([]*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSuppressionLoad, "unable to read suppressions file '%s'", path).
			WithDetail("file", path)
	}
	return LoadBytes(path, data)
}

// LoadBytes parses a suppressions document. file is only used in errors.
//
//	<suppressions>
//	  <suppress files="_test\.go$" checks="MagicNumber"/>
//	  <suppress id="legacyLength" lines="1-40"/>
//	</suppressions>
func LoadBytes(file string, data []byte) ([]*Element, error) {
	logger := logging.GetLogger("suppression")

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSuppressionXML, "unable to parse suppressions file '%s'", file).
			WithDetail("file", file)
	}

	root := doc.SelectElement("suppressions")
	if root == nil {
		return nil, errors.Newf(errors.ErrSuppressionXML, "'%s' has no <suppressions> root element", file).
			WithDetail("file", file)
	}

	var elements []*Element
	for i, el := range root.SelectElements("suppress") {
		e, err := NewElement(Spec{
			Files:   el.SelectAttrValue("files", ""),
			Checks:  el.SelectAttrValue("checks", ""),
			Message: el.SelectAttrValue("message", ""),
			ID:      el.SelectAttrValue("id", ""),
			Lines:   el.SelectAttrValue("lines", ""),
			Columns: el.SelectAttrValue("columns", ""),
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSuppressionXML, "invalid <suppress> entry #%d in '%s'", i+1, file).
				WithDetail("file", file)
		}
		elements = append(elements, e)
	}

	logger.Debug().
		Str("file", file).
		Int("elements", len(elements)).
		Msg("Loaded suppressions")
	return elements, nil
}
