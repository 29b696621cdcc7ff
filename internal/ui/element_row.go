package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynelayout "fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/skeletonne/internal/layout"
	"github.com/ytget/skeletonne/internal/model"
)

// ElementRow is the control card of one element: title, remove button,
// orientation, size, radius and color inputs.
type ElementRow struct {
	widget.BaseWidget

	element      model.Element
	position     int
	localization *Localization

	// syncing is set while inputs are filled from the element, so their
	// change handlers do not echo the values back as updates
	syncing bool

	titleLabel        *widget.Label
	removeBtn         *widget.Button
	orientationSelect *widget.Select
	widthEntry        *widget.Entry
	heightEntry       *widget.Entry
	radiusSelect      *widget.Select
	colorEntry        *widget.Entry

	labels map[string]*widget.Label

	onUpdate func(id string, patch layout.Patch)
	onRemove func(id string)
}

// NewElementRow creates a control card
func NewElementRow(localization *Localization, onUpdate func(string, layout.Patch), onRemove func(string)) *ElementRow {
	row := &ElementRow{
		localization: localization,
		onUpdate:     onUpdate,
		onRemove:     onRemove,
		labels:       make(map[string]*widget.Label),
	}
	row.createComponents()
	row.ExtendBaseWidget(row)
	return row
}

// ID returns the id of the element shown by the row
func (r *ElementRow) ID() string {
	return r.element.ID
}

// SetElement fills the inputs from e; position is 1-based
func (r *ElementRow) SetElement(position int, e model.Element) {
	r.syncing = true
	defer func() { r.syncing = false }()

	r.element = e
	r.position = position
	r.titleLabel.SetText(r.localization.Format(KeySkeletonTitle, position))

	r.orientationSelect.SetSelected(r.orientationLabel(e.Orientation))
	setEntryText(r.widthEntry, e.Width)
	setEntryText(r.heightEntry, e.Height)
	r.radiusSelect.SetSelected(string(e.BorderRadius))
	setEntryText(r.colorEntry, e.Color)
}

// RefreshTexts re-reads every label from the localization
func (r *ElementRow) RefreshTexts() {
	r.syncing = true
	defer func() { r.syncing = false }()

	r.titleLabel.SetText(r.localization.Format(KeySkeletonTitle, r.position))
	r.removeBtn.SetText(r.localization.GetText(KeyRemove))
	for key, label := range r.labels {
		label.SetText(r.localization.GetText(key))
	}
	r.colorEntry.SetPlaceHolder(r.localization.GetText(KeyColorPlaceholder))

	r.orientationSelect.Options = []string{
		r.localization.GetText(KeyVertical),
		r.localization.GetText(KeyHorizontal),
	}
	r.orientationSelect.SetSelected(r.orientationLabel(r.element.Orientation))
}

// createComponents initializes all UI components
func (r *ElementRow) createComponents() {
	r.titleLabel = widget.NewLabel("")
	r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	r.removeBtn = widget.NewButton(r.localization.GetText(KeyRemove), func() {
		if r.onRemove != nil && r.element.ID != "" {
			r.onRemove(r.element.ID)
		}
	})
	r.removeBtn.Importance = widget.DangerImportance

	r.orientationSelect = widget.NewSelect([]string{
		r.localization.GetText(KeyVertical),
		r.localization.GetText(KeyHorizontal),
	}, func(selected string) {
		o := r.parseOrientationLabel(selected)
		r.emit(layout.Patch{Orientation: &o})
	})

	r.widthEntry = widget.NewEntry()
	r.widthEntry.SetPlaceHolder(model.DefaultWidth)
	r.widthEntry.OnChanged = func(text string) {
		r.emit(layout.Patch{Width: &text})
	}

	r.heightEntry = widget.NewEntry()
	r.heightEntry.SetPlaceHolder(model.DefaultHeight)
	r.heightEntry.OnChanged = func(text string) {
		r.emit(layout.Patch{Height: &text})
	}

	radiusOptions := make([]string, 0, len(model.RadiusScale()))
	for _, radius := range model.RadiusScale() {
		radiusOptions = append(radiusOptions, string(radius))
	}
	r.radiusSelect = widget.NewSelect(radiusOptions, func(selected string) {
		radius := model.Radius(selected)
		r.emit(layout.Patch{BorderRadius: &radius})
	})

	r.colorEntry = widget.NewEntry()
	r.colorEntry.SetPlaceHolder(r.localization.GetText(KeyColorPlaceholder))
	r.colorEntry.Validator = model.ValidateColor
	r.colorEntry.OnChanged = func(text string) {
		if model.ValidateColor(text) != nil {
			return
		}
		r.emit(layout.Patch{Color: &text})
	}
}

func (r *ElementRow) label(key string) *widget.Label {
	l := widget.NewLabel(r.localization.GetText(key))
	r.labels[key] = l
	return l
}

// emit forwards a patch unless inputs are being synced
func (r *ElementRow) emit(patch layout.Patch) {
	if r.syncing || r.onUpdate == nil || r.element.ID == "" {
		return
	}
	r.onUpdate(r.element.ID, patch)
}

func (r *ElementRow) orientationLabel(o model.Orientation) string {
	if o == model.OrientationHorizontal {
		return r.localization.GetText(KeyHorizontal)
	}
	return r.localization.GetText(KeyVertical)
}

func (r *ElementRow) parseOrientationLabel(label string) model.Orientation {
	if label == r.localization.GetText(KeyHorizontal) {
		return model.OrientationHorizontal
	}
	return model.OrientationVertical
}

// CreateRenderer creates the widget renderer
func (r *ElementRow) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, r.removeBtn, r.titleLabel)
	form := container.New(fynelayout.NewFormLayout(),
		r.label(KeyOrientation), r.orientationSelect,
		r.label(KeyWidth), r.widthEntry,
		r.label(KeyHeight), r.heightEntry,
		r.label(KeyRadius), r.radiusSelect,
		r.label(KeyColor), r.colorEntry,
	)
	card := container.NewVBox(header, form, widget.NewSeparator())
	return &elementRowRenderer{content: card}
}

// elementRowRenderer renders the element row widget
type elementRowRenderer struct {
	content *fyne.Container
}

func (er *elementRowRenderer) Layout(size fyne.Size) {
	er.content.Resize(size)
}

func (er *elementRowRenderer) MinSize() fyne.Size {
	min := er.content.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

func (er *elementRowRenderer) Refresh() {
	er.content.Refresh()
}

func (er *elementRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{er.content}
}

func (er *elementRowRenderer) Destroy() {}

func setEntryText(entry *widget.Entry, text string) {
	if entry.Text != text {
		entry.SetText(text)
	}
}
