package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/setupguide/internal/repo/model"
)

func TestResolveRun(t *testing.T) {
	tests := []struct {
		name  string
		tags  []TechTag
		files []string
		want  []string
	}{
		{"streamlit app.py", []TechTag{TagStreamlit}, []string{"app.py"}, []string{"streamlit run app.py"}},
		{"streamlit main.py", []TechTag{TagStreamlit}, []string{"main.py"}, []string{"streamlit run main.py"}},
		{"streamlit prefers app.py", []TechTag{TagStreamlit}, []string{"main.py", "app.py"}, []string{"streamlit run app.py"}},
		{"streamlit placeholder", []TechTag{TagStreamlit}, nil, []string{"streamlit run <main_file>.py"}},
		{"streamlit beats flask", []TechTag{TagFlask, TagStreamlit}, []string{"app.py"}, []string{"streamlit run app.py"}},
		{"flask app.py", []TechTag{TagFlask}, []string{"app.py"}, []string{"export FLASK_APP=app.py", "flask run"}},
		{"flask main.py", []TechTag{TagFlask}, []string{"main.py"}, []string{"export FLASK_APP=main.py", "flask run"}},
		{"flask placeholder", []TechTag{TagFlask}, nil, []string{"export FLASK_APP=<main_file>.py", "flask run"}},
		{"flask beats django", []TechTag{TagDjango, TagFlask}, []string{"manage.py"}, []string{"export FLASK_APP=<main_file>.py", "flask run"}},
		{"django ignores manifest", []TechTag{TagDjango}, nil, []string{"python manage.py migrate", "python manage.py runserver"}},
		{"fastapi main.py", []TechTag{TagFastAPI}, []string{"main.py"}, []string{"uvicorn main:app --reload"}},
		{"fastapi default", []TechTag{TagFastAPI}, nil, []string{"uvicorn app:app --reload"}},
		{"fastapi app.py", []TechTag{TagFastAPI}, []string{"app.py"}, []string{"uvicorn app:app --reload"}},
		{"node", []TechTag{TagNode}, nil, []string{"npm start"}},
		{"node with react", []TechTag{TagNode, TagReact}, nil, []string{"npm start", "# Or: npm run dev"}},
		{"node beats python", []TechTag{TagPython, TagNode}, []string{"main.py"}, []string{"npm start"}},
		{"python app.py", []TechTag{TagPython}, []string{"app.py", "main.py"}, []string{"python app.py"}},
		{"python main.py", []TechTag{TagPython}, []string{"main.py"}, []string{"python main.py"}},
		{"python placeholder", []TechTag{TagPython}, nil, []string{"python <main_file>.py"}},
		{"case insensitive entry point", []TechTag{TagPython}, []string{"App.py"}, []string{"python app.py"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, ok := ResolveRun(NewTagSet(tt.tags...), model.NewFileManifest(tt.files...))
			require.True(t, ok)
			assert.Equal(t, StepRun, step.Kind)
			assert.Equal(t, tt.want, step.Commands)
		})
	}
}

func TestResolveRun_NoMatch(t *testing.T) {
	for _, tags := range [][]TechTag{
		nil,
		{TagDocker, TagJava, TagGo},
		{TagReact},
		{"Haskell"},
	} {
		_, ok := ResolveRun(NewTagSet(tags...), model.NewFileManifest("app.py", "main.py"))
		assert.False(t, ok, "tags %v", tags)
	}
}

func TestRunRules(t *testing.T) {
	assert.Equal(t,
		[]TechTag{TagStreamlit, TagFlask, TagDjango, TagFastAPI, TagNode, TagPython},
		RunRules())
}
