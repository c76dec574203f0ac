package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diogo/chatkit/internal/render"
	"github.com/diogo/chatkit/internal/widget"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print one canned reply",
	Long:  `Render a random reply from the sample pool to stdout, using the terminal width.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pool := widget.SampleReplies()
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		reply := pool[rng.Intn(len(pool))]

		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}

		out, err := render.Markdown(reply, render.LoadOptionsFromConfigWithWidth(width))
		if err != nil {
			return fmt.Errorf("failed to render sample: %w", err)
		}

		fmt.Print(out)
		return nil
	},
}
