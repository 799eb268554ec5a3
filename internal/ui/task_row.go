package ui

import (
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-clipper/internal/model"
)

// TaskRow is a compact row for one submitted clip request
type TaskRow struct {
	widget.BaseWidget

	task         model.ClipTask
	localization *Localization

	titleLabel   *widget.Label
	detailLabel  *widget.Label
	statusLabel  *widget.Label
	elapsedLabel *widget.Label

	stopBtn   *widget.Button
	revealBtn *widget.Button // reveal in file manager
	openBtn   *widget.Button // open with default app

	onStop   func(taskID string)
	onReveal func(filePath string)
	onOpen   func(filePath string)
}

// NewTaskRow creates a new task row widget
func NewTaskRow(localization *Localization) *TaskRow {
	tr := &TaskRow{localization: localization}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TaskRow) SetCallbacks(onStop func(taskID string), onReveal, onOpen func(filePath string)) {
	tr.onStop = onStop
	tr.onReveal = onReveal
	tr.onOpen = onOpen
}

// UpdateTask updates the row with new task data
func (tr *TaskRow) UpdateTask(task model.ClipTask) {
	tr.task = task
	tr.updateFromTask()
	tr.Refresh()
}

func (tr *TaskRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.TextStyle = fyne.TextStyle{Monospace: true}
	tr.detailLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Alignment = fyne.TextAlignTrailing
	tr.elapsedLabel = widget.NewLabel("")
	tr.elapsedLabel.Alignment = fyne.TextAlignTrailing

	tr.stopBtn = widget.NewButton(IconStop, func() {
		if tr.onStop != nil {
			tr.onStop(tr.task.ID)
		}
	})
	tr.revealBtn = widget.NewButton(IconFolder, func() {
		tr.withPath(tr.onReveal)
	})
	tr.openBtn = widget.NewButton(IconPlay, func() {
		tr.withPath(tr.onOpen)
	})
}

// withPath calls fn with the produced file, or the transcript when the
// request produced only that.
func (tr *TaskRow) withPath(fn func(string)) {
	path := tr.task.OutputPath
	if path == "" {
		path = tr.task.TranscriptPath
	}
	if path == "" || fn == nil {
		log.Printf("No output path available for task %s (status: %s)", tr.task.ID, tr.task.Status)
		return
	}
	fn(path)
}

// Detail returns the second row text: mode, resolution and transcript marker.
func (tr *TaskRow) Detail() string {
	req := tr.task.Request
	var parts []string
	switch {
	case req.AudioOnly:
		parts = append(parts, IconMusic+" mp3")
	case req.FullVideo:
		parts = append(parts, string(req.Resolution))
	default:
		parts = append(parts, IconScissors+" "+req.StartTime+"-"+req.EndTime, string(req.Resolution))
	}
	if tr.task.TranscriptPath != "" {
		parts = append(parts, tr.localization.GetText(KeyTranscriptPresent))
	}
	if tr.task.LastError != "" {
		parts = append(parts, tr.task.LastError)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

func (tr *TaskRow) updateFromTask() {
	title := strings.Join(strings.Fields(tr.task.GetDisplayTitle()), " ")
	tr.titleLabel.SetText(title)
	tr.detailLabel.SetText(tr.Detail())
	tr.elapsedLabel.SetText(tr.task.GetElapsedString())

	switch tr.task.Status {
	case model.TaskStatusError:
		tr.statusLabel.Importance = widget.DangerImportance
		tr.statusLabel.SetText(IconError + " " + tr.task.Status.String())
	case model.TaskStatusCompleted:
		tr.statusLabel.Importance = widget.SuccessImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	case model.TaskStatusDownloading, model.TaskStatusTrimming, model.TaskStatusTranscribing:
		tr.statusLabel.Importance = widget.HighImportance
		tr.statusLabel.SetText(IconPlay + " " + tr.task.Status.String())
	case model.TaskStatusStopped:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(IconStop + " " + tr.task.Status.String())
	default:
		tr.statusLabel.Importance = widget.MediumImportance
		tr.statusLabel.SetText(tr.task.Status.String())
	}

	if tr.task.Status.IsFinished() || tr.task.Status == model.TaskStatusStopping {
		tr.stopBtn.Disable()
	} else {
		tr.stopBtn.Enable()
	}
	if tr.task.OutputPath != "" || tr.task.TranscriptPath != "" {
		tr.revealBtn.Enable()
		tr.openBtn.Enable()
	} else {
		tr.revealBtn.Disable()
		tr.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.Transparent)
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	info := container.NewVBox(
		fixedWidth(StatusLabelWidth, tr.statusLabel),
		fixedWidth(ElapsedLabelWidth, tr.elapsedLabel),
	)
	actions := container.NewHBox(tr.stopBtn, tr.revealBtn, tr.openBtn)
	right := container.NewBorder(nil, nil, nil, actions, info)
	left := container.NewVBox(tr.titleLabel, tr.detailLabel)

	return widget.NewSimpleRenderer(container.NewVBox(
		container.NewBorder(nil, nil, nil, right, left),
		widget.NewSeparator(),
	))
}

// MinSize keeps rows readable in narrow windows
func (tr *TaskRow) MinSize() fyne.Size {
	size := tr.BaseWidget.MinSize()
	return fyne.NewSize(max(size.Width, RowMinWidth), max(size.Height, RowMinHeight))
}
