package cli

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spin renders an indeterminate spinner on w until stop is closed. It returns
// a done channel that closes once the spinner has cleaned up its line.
func Spin(w io.Writer, description string, stop <-chan struct{}) <-chan struct{} {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				_ = bar.Finish()
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()
	return done
}
