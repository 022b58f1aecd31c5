package assets

// DefaultStyleName is the built-in knowledge base style sheet.
const DefaultStyleName = "knowledge-base"

// PageTemplateName is the document shell every page is rendered into.
const PageTemplateName = "page"

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads an embedded style sheet by name, without the .css
// extension.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an embedded HTML template by name, without the .html
// extension.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// StyleNames lists the embedded style sheets.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
