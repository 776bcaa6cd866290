// Package timerview renders the timer in a fyne window and forwards user
// commands to the timekeeper. It holds no timer state of its own.
package timerview

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"intervaltimer/internal/core/timekeeper"
	"intervaltimer/internal/logx"
)

// Commands is the subset of the timekeeper the view drives.
type Commands interface {
	SelectTemplate(name string) error
	PrimaryAction()
	RequestNotificationPermission(ctx context.Context)
}

// View is the timer widget: template picker, current interval, remaining
// time, the primary button and the notification opt-in.
type View struct {
	commands Commands
	log      logx.Logger

	templateSelect *widget.Select
	heading        *widget.Label
	clock          *canvas.Text
	primary        *widget.Button
	notifyButton   *widget.Button
	content        fyne.CanvasObject

	rendering          bool
	onTemplateSelected func(name string)
}

// New builds the view. Render must be called before it shows anything
// meaningful.
func New(commands Commands, log logx.Logger) *View {
	view := &View{
		commands: commands,
		log:      log.With(logx.String("component", "timerview")),
	}

	view.templateSelect = widget.NewSelect(nil, view.handleTemplateChange)
	view.heading = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	view.clock = canvas.NewText("--:--", color.NRGBA{R: 230, G: 73, B: 128, A: 255})
	view.clock.Alignment = fyne.TextAlignCenter
	view.clock.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	view.clock.TextSize = 48

	view.primary = widget.NewButton("Start", commands.PrimaryAction)
	view.primary.Importance = widget.HighImportance

	view.notifyButton = widget.NewButtonWithIcon("Get notified!", theme.MailComposeIcon(), func() {
		go commands.RequestNotificationPermission(context.Background())
	})

	view.content = container.NewVBox(
		widget.NewForm(widget.NewFormItem("Templates", view.templateSelect)),
		view.heading,
		view.clock,
		view.primary,
		container.NewHBox(layout.NewSpacer(), view.notifyButton),
	)
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.content
}

// SetOnTemplateSelected registers a hook run after the user picked a
// template successfully.
func (view *View) SetOnTemplateSelected(fn func(name string)) {
	view.onTemplateSelected = fn
}

// Render shows snapshot. Call it on the fyne main thread.
func (view *View) Render(snapshot timekeeper.Snapshot) {
	view.rendering = true
	defer func() { view.rendering = false }()

	view.templateSelect.Options = snapshot.Templates
	if snapshot.TemplateName != "" && view.templateSelect.Selected != snapshot.TemplateName {
		view.templateSelect.SetSelected(snapshot.TemplateName)
	}
	view.templateSelect.Refresh()

	view.heading.SetText("Current: " + snapshot.IntervalName)
	view.clock.Text = snapshot.MinutesText() + ":" + snapshot.SecondsText()
	view.clock.Refresh()

	label := snapshot.ButtonLabel()
	if label == "" {
		view.primary.Disable()
		return
	}
	view.primary.Enable()
	view.primary.SetText(label)
}

func (view *View) handleTemplateChange(name string) {
	if view.rendering {
		return
	}
	if err := view.commands.SelectTemplate(name); err != nil {
		view.log.Warn("template selection rejected", logx.String("template", name), logx.Err(err))
		return
	}
	if view.onTemplateSelected != nil {
		view.onTemplateSelected(name)
	}
}
