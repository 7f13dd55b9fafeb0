package utils

import (
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var (
	spin     *spinner.Spinner
	spinOnce sync.Once
)

func DrawBanner() {
	figure.NewColorFigure("cloud advisor", "", "green", true).Print()
}

// StartSpinner shows progress on stderr so that stdout stays parseable
func StartSpinner() {
	spinOnce.Do(func() {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = " Collecting recommendations..."
	})
	spin.Start()
}

func StopSpinner() {
	if spin != nil {
		spin.Stop()
	}
}
