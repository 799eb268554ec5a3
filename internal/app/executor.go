package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/timecode"
	"github.com/ytget/yt-clipper/internal/transcript"
)

// User-facing messages
const (
	MsgVideoSaved       = "Video downloaded and saved as: %s"
	MsgTranscriptSaved  = "Transcript downloaded successfully: %s"
	MsgNoTranscript     = "No transcript available for this video."
	MsgDownloadFailed   = "Download failed: %s"
	MsgDownloadCanceled = "Download cancelled."
)

// Outcome lists the artifacts produced by one request.
type Outcome struct {
	Title          string
	VideoPath      string
	TranscriptPath string
}

type entry struct {
	task   *model.ClipTask
	cancel context.CancelFunc
	done   chan struct{}
}

// Executor runs clip requests and keeps a registry of submitted tasks.
type Executor struct {
	downloader  download.Downloader
	transcripts transcript.Fetcher
	prefix      string

	mu       sync.RWMutex
	tasks    map[string]*entry
	inFlight map[string]string // request key -> task id
	onChange func()
}

// NewExecutor creates an executor; prefix names the final artifacts.
func NewExecutor(downloader download.Downloader, transcripts transcript.Fetcher, prefix string) *Executor {
	if prefix == "" {
		prefix = download.DefaultPrefix
	}
	return &Executor{
		downloader:  downloader,
		transcripts: transcripts,
		prefix:      prefix,
		tasks:       make(map[string]*entry),
		inFlight:    make(map[string]string),
	}
}

// SetOnChange registers a callback fired after every task state change.
func (e *Executor) SetOnChange(fn func()) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// Validate checks a request before any work starts.
func Validate(req model.ClipRequest) (*model.TrimWindow, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, fmt.Errorf("%w: please enter a video URL", errs.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Folder) == "" {
		return nil, fmt.Errorf("%w: please choose an output folder", errs.ErrInvalidInput)
	}
	if !req.WantsTrim() {
		return nil, nil
	}
	if strings.TrimSpace(req.StartTime) == "" || strings.TrimSpace(req.EndTime) == "" {
		return nil, fmt.Errorf("%w: please enter start and end times", errs.ErrInvalidInput)
	}
	w, err := timecode.ParseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Execute runs req synchronously. Every failure produces exactly one error
// notification; a missing transcript is reported as information.
func (e *Executor) Execute(ctx context.Context, req model.ClipRequest, n Notifier) (*Outcome, error) {
	return e.execute(ctx, req, n, nil)
}

func (e *Executor) execute(ctx context.Context, req model.ClipRequest, n Notifier, onStatus func(model.TaskStatus)) (*Outcome, error) {
	if n == nil {
		n = LogNotifier{}
	}
	if req.ID == "" {
		req.ID = newID()
	}

	window, err := Validate(req)
	if err != nil {
		n.Error(TitleError, fmt.Sprintf(MsgDownloadFailed, err))
		return nil, err
	}
	if req.Resolution == "" {
		req.Resolution = model.DefaultResolution
	}
	if req.AudioOnly && !req.FullVideo {
		log.Printf("Request %s is audio-only; trim times are ignored", req.ID)
	}

	log.Printf("Executing request %s: url=%s full=%t audio=%t transcript=%t res=%s",
		req.ID, req.URL, req.FullVideo, req.AudioOnly, req.Transcript, req.Resolution)

	res, err := e.downloader.Fetch(ctx, download.Job{
		URL:        req.URL,
		Trim:       window,
		Folder:     req.Folder,
		Prefix:     e.prefix,
		TempBase:   download.TempBasePrefix + req.ID,
		Resolution: req.Resolution,
		AudioOnly:  req.AudioOnly,
		OnStatus:   onStatus,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			n.Info(TitleCancelled, MsgDownloadCanceled)
			return nil, err
		}
		log.Printf("Request %s failed (%s): %v", req.ID, errs.Kind(err), err)
		n.Error(TitleError, fmt.Sprintf(MsgDownloadFailed, err))
		return nil, err
	}

	out := &Outcome{Title: res.Title, VideoPath: res.Path}
	n.Info(TitleSuccess, fmt.Sprintf(MsgVideoSaved, res.Path))

	if req.Transcript && e.transcripts != nil {
		if onStatus != nil {
			onStatus(model.TaskStatusTranscribing)
		}
		if path, ok := e.transcripts.FetchTranscript(ctx, req.URL, req.Folder, e.prefix); ok {
			out.TranscriptPath = path
			n.Info(TitleTranscript, fmt.Sprintf(MsgTranscriptSaved, path))
		} else {
			n.Info(TitleTranscript, MsgNoTranscript)
		}
	}
	return out, nil
}

// Submit starts req on its own goroutine and returns its task handle. A
// request for a URL and folder that is already in flight is rejected with
// errs.ErrBusy.
func (e *Executor) Submit(req model.ClipRequest, n Notifier) (*model.ClipTask, error) {
	if req.ID == "" {
		req.ID = newID()
	}
	key := req.Key()

	e.mu.Lock()
	if id, ok := e.inFlight[key]; ok {
		e.mu.Unlock()
		err := fmt.Errorf("%w: %s (task %s)", errs.ErrBusy, req.URL, id)
		if n != nil {
			n.Error(TitleError, fmt.Sprintf(MsgDownloadFailed, err))
		}
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	ent := &entry{
		task: &model.ClipTask{
			ID:        req.ID,
			Request:   req,
			Status:    model.TaskStatusStarting,
			StartedAt: time.Now(),
		},
		cancel: cancel,
		done:   make(chan struct{}),
	}
	e.tasks[req.ID] = ent
	e.inFlight[key] = req.ID
	snapshot := *ent.task
	e.mu.Unlock()
	e.changed()

	go func() {
		defer close(ent.done)
		defer cancel()

		out, err := e.execute(ctx, req, n, func(s model.TaskStatus) {
			e.update(req.ID, func(t *model.ClipTask) { t.Status = s })
		})

		e.mu.Lock()
		t := ent.task
		t.FinishedAt = time.Now()
		switch {
		case err == nil:
			t.Status = model.TaskStatusCompleted
			t.Title = out.Title
			t.OutputPath = out.VideoPath
			t.TranscriptPath = out.TranscriptPath
		case errors.Is(err, context.Canceled):
			t.Status = model.TaskStatusStopped
		default:
			t.Status = model.TaskStatusError
			t.LastError = err.Error()
		}
		delete(e.inFlight, key)
		e.mu.Unlock()
		e.changed()
	}()

	return &snapshot, nil
}

// Cancel stops a running task. It reports false for unknown or finished tasks.
func (e *Executor) Cancel(id string) bool {
	e.mu.Lock()
	ent, ok := e.tasks[id]
	if !ok || ent.task.Status.IsFinished() {
		e.mu.Unlock()
		return false
	}
	ent.task.Status = model.TaskStatusStopping
	e.mu.Unlock()

	ent.cancel()
	e.changed()
	return true
}

// Wait blocks until the task finishes or ctx is done.
func (e *Executor) Wait(ctx context.Context, id string) error {
	e.mu.RLock()
	ent, ok := e.tasks[id]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown task %s", id)
	}
	select {
	case <-ent.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns a copy of the task with the given id.
func (e *Executor) Get(id string) (model.ClipTask, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ent, ok := e.tasks[id]
	if !ok {
		return model.ClipTask{}, false
	}
	return *ent.task, true
}

// Active returns copies of the tasks still running, oldest first.
func (e *Executor) Active() []model.ClipTask {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []model.ClipTask
	for _, ent := range e.tasks {
		if ent.task.Status.IsActive() {
			out = append(out, *ent.task)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

func (e *Executor) update(id string, fn func(*model.ClipTask)) {
	e.mu.Lock()
	ent, ok := e.tasks[id]
	if ok && !ent.task.Status.IsFinished() && ent.task.Status != model.TaskStatusStopping {
		fn(ent.task)
	}
	e.mu.Unlock()
	if ok {
		e.changed()
	}
}

func (e *Executor) changed() {
	e.mu.RLock()
	fn := e.onChange
	e.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
