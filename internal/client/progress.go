package client

import (
	"context"
	"errors"
	"time"
)

// WarningMessage is the only failure text a user sees; server detail stays in logs.
const WarningMessage = "Something went wrong. Please try again."

// ErrEmptyURL is returned without contacting the server, like a required form field.
var ErrEmptyURL = errors.New("video url is required")

// Progress drives an optimistic staged indicator around a single blocking request.
// Stages after Downloading advance on fixed delays once the response has arrived,
// so they do not reflect real server progress.
type Progress struct {
	transcriber Transcriber
	render      RenderFunc
	stepDelay   time.Duration
	doneDelay   time.Duration

	view View
}

// Submit runs one request and returns the final view. The returned error is for logging only.
func (p *Progress) Submit(ctx context.Context, url string) (View, error) {
	p.update(func(v *View) {
		*v = View{Step: StepDownloading, Loading: true}
	})

	if url == "" {
		p.fail()
		return p.view, ErrEmptyURL
	}

	res, err := p.transcriber.Transcribe(ctx, url)
	if err != nil {
		p.fail()
		return p.view, err
	}

	p.update(func(v *View) { v.Step = StepTranscribing })
	if err := sleep(ctx, p.stepDelay); err != nil {
		p.fail()
		return p.view, err
	}

	p.update(func(v *View) {
		v.Transcript = res.Transcript
		v.Step = StepSummarizing
	})
	if err := sleep(ctx, p.stepDelay); err != nil {
		p.fail()
		return p.view, err
	}

	p.update(func(v *View) {
		v.Summary = res.Summary
		v.Loading = false
	})
	if err := sleep(ctx, p.doneDelay); err != nil {
		return p.view, nil
	}

	p.update(func(v *View) { v.Step = StepDone })
	return p.view, nil
}

// View returns the last rendered state
func (p *Progress) View() View {
	return p.view
}

func (p *Progress) fail() {
	p.update(func(v *View) {
		*v = View{Step: StepIdle, Warning: WarningMessage}
	})
}

func (p *Progress) update(fn func(v *View)) {
	fn(&p.view)
	p.render(p.view)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
