package page

import (
	"context"
	"fmt"

	"github.com/go-rod/rod/lib/proto"
)

// DialogHandle tracks one armed native-dialog handler.
type DialogHandle struct {
	done    chan struct{}
	cancel  context.CancelFunc
	err     error
	message string
}

// ConfirmNativeDialog arms a one-shot handler that accepts (or dismisses) the
// next alert/confirm/prompt opened by the tab. It must be called before the
// action that raises the dialog. The handler gives up after the dialog
// timeout.
func (b *Base) ConfirmNativeDialog(ctx context.Context, accept bool) *DialogHandle {
	dialogCtx, cancel := context.WithTimeout(ctx, b.opts.dialogTimeout)

	// HandleDialog subscribes to the dialog event before returning, so the
	// listener is live before any later action runs.
	wait, handle := b.tab.Context(dialogCtx).HandleDialog()

	h := &DialogHandle{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer close(h.done)
		defer cancel()

		e := wait()
		if dialogCtx.Err() != nil {
			h.err = b.Fail("confirm dialog", "", ErrDialogTimeout, fmt.Sprintf("no dialog within %s", b.opts.dialogTimeout))
			return
		}

		h.message = e.Message
		b.log.Debug().Str("op", "confirm dialog").Str("type", string(e.Type)).Str("message", e.Message).Bool("accept", accept).Send()
		if err := handle(&proto.PageHandleJavaScriptDialog{Accept: accept}); err != nil {
			h.err = b.Fail("confirm dialog", "", err, "")
		}
	}()

	return h
}

// Wait blocks until the dialog was handled or the handler gave up.
func (h *DialogHandle) Wait() error {
	<-h.done
	return h.err
}

// Release disarms the handler and waits for its goroutine to exit.
func (h *DialogHandle) Release() {
	h.cancel()
	<-h.done
}

// Message is the text of the handled dialog, empty until Wait returns nil.
func (h *DialogHandle) Message() string {
	return h.message
}

// PerformWithDialog arms a dialog handler, runs action and waits for the
// dialog to be handled.
func (b *Base) PerformWithDialog(ctx context.Context, accept bool, action Action) error {
	h := b.ConfirmNativeDialog(ctx, accept)
	if err := action(ctx); err != nil {
		h.Release()
		return err
	}
	return h.Wait()
}
