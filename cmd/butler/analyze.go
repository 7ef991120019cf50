package main

import (
	"context"
	"fmt"
	"os"

	"butler/internal/cli"
	"butler/internal/common"
	"butler/internal/model"
	"butler/internal/vision"

	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "analyze <image.jpg>",
		Short: "Extract item details from a photo",
		Long: `Send a JPEG (receipt, product label, document) to the configured
multimodal model and print the detected name, category and expiry date.
With --save the detected item is tracked immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			result, err := analyzeImage(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", cli.FormatTitle("Analysis result"))
			fmt.Printf("  name:       %s\n", result.Name)
			fmt.Printf("  category:   %s\n", result.Category.Label())
			fmt.Printf("  expires:    %s\n", result.ExpiryDate.Format("2006-01-02"))
			fmt.Printf("  confidence: %.0f%%\n", result.Confidence*100)

			if !save {
				return nil
			}

			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			item, err := st.Create(ctx, model.Draft{
				Name:         result.Name,
				Category:     result.Category,
				ExpiryDate:   result.ExpiryDate,
				ReminderDays: st.Settings().ReminderDays,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Tracking %q (id %s)", item.Name, shortID(item.ID))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "track the detected item immediately")

	return cmd
}

// analyzeImage reads the image and runs the single fire-and-wait analysis
// call with a spinner on stderr.
func analyzeImage(ctx context.Context, path string) (vision.Result, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return vision.Result{}, common.NewUserError(fmt.Sprintf("could not read image %s", path), err)
	}

	client, err := newVisionClient()
	if err != nil {
		return vision.Result{}, err
	}

	stop := make(chan struct{})
	done := cli.Spin(os.Stderr, fmt.Sprintf("%s Analyzing image...", cli.CameraIcon), stop)

	result, err := client.AnalyzeImage(ctx, image)
	close(stop)
	<-done

	if err != nil {
		return vision.Result{}, err
	}
	return result, nil
}
