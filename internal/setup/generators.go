package setup

// generator produces the steps for one technology. It runs only when its tag
// is present in the tag set.
type generator struct {
	tag   TechTag
	build func(files fileIndex) []Step
}

// generators run in this order and are not mutually exclusive.
var generators = []generator{
	{TagPython, pythonSteps},
	{TagNode, nodeSteps},
	{TagDocker, dockerSteps},
	{TagJava, javaSteps},
}

// GeneratorTags returns the generator dispatch order.
func GeneratorTags() []TechTag {
	out := make([]TechTag, len(generators))
	for i, g := range generators {
		out[i] = g.tag
	}
	return out
}

func pythonSteps(files fileIndex) []Step {
	venv := Step{
		Kind:        StepPythonEnv,
		Title:       "Set up Python Environment",
		Description: "Create and activate a virtual environment",
		Commands: []string{
			"python -m venv venv",
			"# On Windows:",
			`venv\Scripts\activate`,
			"# On macOS/Linux:",
			"source venv/bin/activate",
		},
		Notes: []string{
			"Python 3.7+ recommended",
			"Virtual environment helps avoid dependency conflicts",
		},
	}

	var install []string
	switch {
	case files.has("requirements.txt"):
		install = []string{"pip install -r requirements.txt"}
	case files.has("setup.py"), files.has("pyproject.toml"):
		install = []string{"pip install -e ."}
	case files.has("pipfile"):
		install = []string{"pip install pipenv", "pipenv install"}
	default:
		install = []string{"# Check for any Python dependencies and install manually"}
	}

	deps := Step{
		Kind:        StepPythonDeps,
		Title:       "Install Dependencies",
		Description: "Install required Python packages",
		Commands:    install,
		Notes:       []string{"Dependencies are listed in requirements.txt or similar files"},
	}
	return []Step{venv, deps}
}

func nodeSteps(files fileIndex) []Step {
	manager := "npm"
	if files.has("yarn.lock") {
		manager = "yarn"
	}
	// package-lock.json selects npm, which is also the default.

	return []Step{{
		Kind:        StepNodeDeps,
		Title:       "Install Node.js Dependencies",
		Description: "Install packages using " + manager,
		Commands:    []string{manager + " install"},
		Notes: []string{
			"Make sure you have Node.js installed (version 14+ recommended)",
			"This project uses " + manager + " as package manager",
		},
	}}
}

func dockerSteps(fileIndex) []Step {
	return []Step{{
		Kind:        StepDocker,
		Title:       "Docker Setup (Alternative)",
		Description: "Run the application using Docker",
		Commands: []string{
			"docker build -t repo-app .",
			"docker run -p 8080:8080 repo-app",
		},
		Notes: []string{
			"Make sure Docker is installed and running",
			"Check Dockerfile for specific port configurations",
		},
	}}
}

func javaSteps(files fileIndex) []Step {
	if files.has("pom.xml") {
		return []Step{{
			Kind:        StepJavaMaven,
			Title:       "Java Maven Setup",
			Description: "Build and run Java application with Maven",
			Commands:    []string{"mvn clean install", "mvn spring-boot:run"},
			Notes:       []string{"Make sure Java 8+ and Maven are installed"},
		}}
	}
	if files.anyContains("gradle") {
		return []Step{{
			Kind:        StepJavaGradle,
			Title:       "Java Gradle Setup",
			Description: "Build and run Java application with Gradle",
			Commands:    []string{"./gradlew build", "./gradlew run"},
			Notes:       []string{"Make sure Java 8+ is installed", "Gradle wrapper is included"},
		}}
	}
	// A Java tag from metadata alone yields nothing.
	return nil
}
