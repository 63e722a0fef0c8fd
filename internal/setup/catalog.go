// Package setup infers a repository's technology stack from its root listing
// and turns it into an ordered, human-readable setup plan.
//
// Everything in this package is a pure function of its inputs. Nothing here
// performs I/O, logs, or keeps state between calls.
package setup

// TechTag names a detected technology. Catalog tags are declared below; any
// other value is a language passed through verbatim from repository metadata.
type TechTag string

// Catalog tags, in declaration order.
const (
	TagPython    TechTag = "Python"
	TagNode      TechTag = "Node.js"
	TagReact     TechTag = "React"
	TagDjango    TechTag = "Django"
	TagFlask     TechTag = "Flask"
	TagFastAPI   TechTag = "FastAPI"
	TagStreamlit TechTag = "Streamlit"
	TagDocker    TechTag = "Docker"
	TagJava      TechTag = "Java"
	TagGo        TechTag = "Go"
	TagRust      TechTag = "Rust"
	TagRuby      TechTag = "Ruby"
	TagPHP       TechTag = "PHP"
	TagCpp       TechTag = "C++"
	TagWeb       TechTag = "HTML/CSS/JS"
	TagVue       TechTag = "Vue.js"
	TagAngular   TechTag = "Angular"
	TagNext      TechTag = "Next.js"
)

// CatalogEntry pairs a tag with the lowercase patterns that detect it.
type CatalogEntry struct {
	Tag      TechTag
	Patterns []string
}

// catalog is evaluated top to bottom. Patterns are substrings, not file names:
// "ng" matches "settings.json" and "django" matches "django_app.py".
var catalog = []CatalogEntry{
	{TagPython, []string{"requirements.txt", "setup.py", "pyproject.toml", "pipfile", "conda.yml", "environment.yml"}},
	{TagNode, []string{"package.json", "package-lock.json", "yarn.lock"}},
	{TagReact, []string{"package.json"}},
	{TagDjango, []string{"manage.py", "django"}},
	{TagFlask, []string{"app.py", "flask"}},
	{TagFastAPI, []string{"fastapi", "uvicorn"}},
	{TagStreamlit, []string{"streamlit", ".streamlit"}},
	{TagDocker, []string{"dockerfile", "docker-compose.yml", "docker-compose.yaml"}},
	{TagJava, []string{"pom.xml", "build.gradle", "gradle.properties"}},
	{TagGo, []string{"go.mod", "go.sum"}},
	{TagRust, []string{"cargo.toml", "cargo.lock"}},
	{TagRuby, []string{"gemfile", "gemfile.lock"}},
	{TagPHP, []string{"composer.json", "composer.lock"}},
	{TagCpp, []string{"makefile", "cmake", "cmakelists.txt"}},
	{TagWeb, []string{"index.html", "style.css", "script.js"}},
	{TagVue, []string{"vue.config.js", "nuxt.config.js"}},
	{TagAngular, []string{"angular.json", "ng"}},
	{TagNext, []string{"next.config.js"}},
}

// Catalog returns a copy of the detection catalog in evaluation order.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	for i, e := range catalog {
		out[i] = CatalogEntry{
			Tag:      e.Tag,
			Patterns: append([]string(nil), e.Patterns...),
		}
	}
	return out
}

// IsCatalogTag reports whether tag is declared in the catalog.
func IsCatalogTag(tag TechTag) bool {
	for _, e := range catalog {
		if e.Tag == tag {
			return true
		}
	}
	return false
}
