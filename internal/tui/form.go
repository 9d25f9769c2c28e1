package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/model"
	"github.com/idilsaglam/recipebox/internal/recipe"
	"github.com/idilsaglam/recipebox/internal/ui"
	"github.com/idilsaglam/recipebox/internal/validate"
	"github.com/idilsaglam/recipebox/internal/view"
)

type focusable int

const (
	fTitle focusable = iota
	fDescription
	fIngredients
	fSteps
	fPrepHours
	fPrepMinutes
	fCookHours
	fCookMinutes
	fDifficulty
	fImageURL
	focusCount
)

// field is the validation field a focusable belongs to.
func (f focusable) field() string {
	switch f {
	case fTitle:
		return validate.Title
	case fDescription:
		return validate.Description
	case fIngredients:
		return validate.Ingredients
	case fSteps:
		return validate.Steps
	case fPrepHours, fPrepMinutes:
		return validate.PrepTime
	case fCookHours, fCookMinutes:
		return validate.CookTime
	case fDifficulty:
		return validate.Difficulty
	default:
		return validate.ImageURL
	}
}

// firstOf is the focusable that starts field.
func firstOf(field string) focusable {
	for f := fTitle; f < focusCount; f++ {
		if f.field() == field {
			return f
		}
	}
	return fTitle
}

type formScreen struct {
	editing bool
	id      string

	title, image                    textinput.Model
	prepH, prepM, cookH, cookM      textinput.Model
	description, ingredients, steps textarea.Model
	difficulty                      int
	focus                           focusable
	errs                            map[string]string
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	return ti
}

func newArea(placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(height)
	return ta
}

func newFormScreen(f validate.Form, editing bool, width int) *formScreen {
	fs := &formScreen{
		editing:     editing,
		id:          f.ID,
		title:       newInput("Recipe title", 0),
		image:       newInput("https://...", 0),
		prepH:       newInput("0", 4),
		prepM:       newInput("0", 4),
		cookH:       newInput("0", 4),
		cookM:       newInput("0", 4),
		description: newArea("A short description", 3),
		ingredients: newArea("One ingredient per line", 4),
		steps:       newArea("One step per line", 4),
		errs:        map[string]string{},
	}
	fs.title.SetValue(f.Title)
	fs.image.SetValue(f.ImageURL)
	fs.prepH.SetValue(f.PrepHours)
	fs.prepM.SetValue(f.PrepMinutes)
	fs.cookH.SetValue(f.CookHours)
	fs.cookM.SetValue(f.CookMinutes)
	fs.description.SetValue(f.Description)
	fs.ingredients.SetValue(f.Ingredients)
	fs.steps.SetValue(f.Steps)
	fs.difficulty = max(slices.Index(model.Difficulties, model.Difficulty(f.Difficulty)), 0)
	fs.setWidth(width)
	return fs
}

func (fs *formScreen) setWidth(w int) {
	w = max(w-2, 20)
	fs.title.Width = w
	fs.image.Width = w
	for _, n := range []*textinput.Model{&fs.prepH, &fs.prepM, &fs.cookH, &fs.cookM} {
		n.Width = 4
	}
	fs.description.SetWidth(w)
	fs.ingredients.SetWidth(w)
	fs.steps.SetWidth(w)
}

// values reads the form back as raw input.
func (fs *formScreen) values() validate.Form {
	return validate.Form{
		ID:          fs.id,
		Title:       fs.title.Value(),
		Description: fs.description.Value(),
		Ingredients: fs.ingredients.Value(),
		Steps:       fs.steps.Value(),
		PrepHours:   fs.prepH.Value(),
		PrepMinutes: fs.prepM.Value(),
		CookHours:   fs.cookH.Value(),
		CookMinutes: fs.cookM.Value(),
		Difficulty:  string(model.Difficulties[fs.difficulty]),
		ImageURL:    fs.image.Value(),
	}
}

func (fs *formScreen) input(f focusable) *textinput.Model {
	switch f {
	case fTitle:
		return &fs.title
	case fPrepHours:
		return &fs.prepH
	case fPrepMinutes:
		return &fs.prepM
	case fCookHours:
		return &fs.cookH
	case fCookMinutes:
		return &fs.cookM
	case fImageURL:
		return &fs.image
	}
	return nil
}

func (fs *formScreen) area(f focusable) *textarea.Model {
	switch f {
	case fDescription:
		return &fs.description
	case fIngredients:
		return &fs.ingredients
	case fSteps:
		return &fs.steps
	}
	return nil
}

func (fs *formScreen) setFocus(f focusable) tea.Cmd {
	if in := fs.input(fs.focus); in != nil {
		in.Blur()
	}
	if ar := fs.area(fs.focus); ar != nil {
		ar.Blur()
	}
	fs.focus = f
	if in := fs.input(f); in != nil {
		return in.Focus()
	}
	if ar := fs.area(f); ar != nil {
		return ar.Focus()
	}
	return nil
}

// move shifts focus by delta, validating the field being left the way a
// form checks a field on blur.
func (fs *formScreen) move(delta int) tea.Cmd {
	next := focusable((int(fs.focus) + delta + int(focusCount)) % int(focusCount))
	if next.field() != fs.focus.field() {
		fs.check(fs.focus.field())
	}
	return fs.setFocus(next)
}

func (fs *formScreen) check(field string) {
	if err := validate.Field(fs.values(), field); err != nil {
		fs.errs[field] = err.Message
		return
	}
	delete(fs.errs, field)
}

// route sends msg to the focused control. Typing clears that field's error.
func (fs *formScreen) route(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		delete(fs.errs, fs.focus.field())
	}
	var cmd tea.Cmd
	if in := fs.input(fs.focus); in != nil {
		*in, cmd = in.Update(msg)
		return cmd
	}
	if ar := fs.area(fs.focus); ar != nil {
		*ar, cmd = ar.Update(msg)
	}
	return cmd
}

func (m Model) openForm(f validate.Form, editing bool) (tea.Model, tea.Cmd) {
	m.form = newFormScreen(f, editing, m.innerWidth())
	m.screen = screenForm
	return m, m.form.setFocus(fTitle)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fs := m.form
	km, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, fs.route(msg)
	}

	switch {
	case key.Matches(km, m.fkeys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.fkeys.Cancel):
		m.form = nil
		m.screen = screenList
		return m, nil
	case key.Matches(km, m.fkeys.Submit):
		return m.submitForm()
	case key.Matches(km, m.fkeys.Next):
		return m, fs.move(1)
	case key.Matches(km, m.fkeys.Prev):
		return m, fs.move(-1)
	case fs.focus == fDifficulty && key.Matches(km, m.fkeys.Cycle):
		n := len(model.Difficulties)
		if km.String() == "left" {
			fs.difficulty = (fs.difficulty + n - 1) % n
		} else {
			fs.difficulty = (fs.difficulty + 1) % n
		}
		delete(fs.errs, validate.Difficulty)
		return m, nil
	}
	return m, fs.route(msg)
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	fs := m.form
	draft, errs := validate.Check(fs.values())
	if len(errs) > 0 {
		fs.errs = make(map[string]string, len(errs))
		for _, e := range errs {
			fs.errs[e.Field] = e.Message
		}
		focusCmd := fs.setFocus(firstOf(errs[0].Field))
		return m, tea.Batch(focusCmd, m.showNotice(recipe.Notice{Severity: recipe.Error, Message: view.FormHasErrors}))
	}

	saved, _, err := m.repo.Upsert(draft)
	if err != nil {
		m.log.Warn("save recipe", zap.Error(err))
		return m, m.takeNotice()
	}
	m.form = nil
	m.screen = screenList
	m.reload()
	m.selectID(saved.ID)
	return m, m.takeNotice()
}

// selectID moves the list cursor to id when it is visible.
func (m *Model) selectID(id string) {
	for i, it := range m.list.Items() {
		if c, ok := it.(cardItem); ok && c.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) viewForm() string {
	t := ui.Current()
	fs := m.form

	label := func(f focusable, text string) string {
		if fs.focus.field() == f.field() {
			return t.Selected.Render(text)
		}
		return t.Label.Render(text)
	}
	errLine := func(field string) []string {
		if msg, ok := fs.errs[field]; ok {
			return []string{t.Error.Render("  " + msg)}
		}
		return nil
	}

	lines := []string{t.Title.Render(view.FormTitle(fs.editing)), ""}

	lines = append(lines, label(fTitle, "Title"), fs.title.View())
	lines = append(lines, errLine(validate.Title)...)
	lines = append(lines, label(fDescription, "Description"), fs.description.View())
	lines = append(lines, errLine(validate.Description)...)
	lines = append(lines, label(fIngredients, "Ingredients"), fs.ingredients.View())
	lines = append(lines, errLine(validate.Ingredients)...)
	lines = append(lines, label(fSteps, "Steps"), fs.steps.View())
	lines = append(lines, errLine(validate.Steps)...)

	lines = append(lines, label(fPrepHours, "Prep time  ")+fs.prepH.View()+" h  "+fs.prepM.View()+" min")
	lines = append(lines, errLine(validate.PrepTime)...)
	lines = append(lines, label(fCookHours, "Cook time  ")+fs.cookH.View()+" h  "+fs.cookM.View()+" min")
	lines = append(lines, errLine(validate.CookTime)...)

	d := model.Difficulties[fs.difficulty]
	choice := ui.Badge(d)
	if fs.focus == fDifficulty {
		choice = "‹ " + choice + " ›"
	}
	lines = append(lines, label(fDifficulty, "Difficulty ")+choice)
	lines = append(lines, errLine(validate.Difficulty)...)

	lines = append(lines, label(fImageURL, "Image URL (optional)"), fs.image.View())
	lines = append(lines, errLine(validate.ImageURL)...)

	return strings.Join(lines, "\n")
}
