package main

import (
	"github.com/rivo/tview"
)

// collectPairs runs a full-screen form for entering name/value pairs, so
// sensitive values never land in shell history or process listings.
func collectPairs() ([]pair, error) {
	var (
		app   = tview.NewApplication()
		form  = tview.NewForm()
		pairs []pair
		name  string
		value string
	)
	clearFields := func() {
		name, value = "", ""
		form.GetFormItemByLabel("Name").(*tview.InputField).SetText("")
		form.GetFormItemByLabel("Value").(*tview.InputField).SetText("")
		form.SetFocus(0)
	}
	form.
		AddInputField("Name", "", 40, nil, func(text string) {
			name = text
		}).
		AddPasswordField("Value", "", 40, '*', func(text string) {
			value = text
		}).
		AddButton("Add", func() {
			if len(name) == 0 {
				return
			}
			pairs = append(pairs, pair{name: name, value: value})
			clearFields()
		}).
		AddButton("Done", func() {
			app.Stop()
		})
	form.SetBorder(true).SetTitle(" xorpack ").SetTitleAlign(tview.AlignLeft)

	if err := app.SetRoot(form, true).Run(); err != nil {
		return nil, err
	}
	return pairs, nil
}
