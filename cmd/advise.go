package cmd

import (
	"fmt"
	"os"

	"github.com/kozaktomas/beauty-advisor/internal/advice"
	"github.com/kozaktomas/beauty-advisor/internal/classify"
	"github.com/kozaktomas/beauty-advisor/internal/render"
	"github.com/spf13/cobra"
)

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Print advice for known labels without a photo",
	Long: `Map face shape, undertone and nose labels straight to advice.

Face shapes: oval, round, square, heart, oblong, diamond
Undertones:  warm, olive, balanced, cool, undetermined
Noses:       balanced, wide, wide-narrow-bridge, narrow, long, thin, short

Examples:
  beauty-advisor advise --face-shape round --undertone warm
  beauty-advisor advise --face-shape oblong --undertone cool --nose long --json`,
	Args: cobra.NoArgs,
	RunE: runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)

	adviseCmd.Flags().String("face-shape", "oval", "Face shape")
	adviseCmd.Flags().String("undertone", "", "Skin undertone")
	adviseCmd.Flags().String("nose", "balanced", "Nose shape")
	adviseCmd.Flags().Bool("json", false, "Output as JSON")
	adviseCmd.MarkFlagRequired("undertone")
	addMapperFlags(adviseCmd)
}

func runAdvise(cmd *cobra.Command, args []string) error {
	face, err := classify.ParseFaceShape(mustGetString(cmd, "face-shape"))
	if err != nil {
		return err
	}
	undertone, err := classify.ParseUndertone(mustGetString(cmd, "undertone"))
	if err != nil {
		return err
	}
	nose, err := classify.ParseNoseShape(mustGetString(cmd, "nose"))
	if err != nil {
		return err
	}

	result := classify.Result{FaceShape: face, Undertone: undertone, NoseShape: nose}
	bundle := newMapper(cmd).Build(result)

	if mustGetBool(cmd, "json") {
		return outputJSON(struct {
			FaceShape classify.FaceShape `json:"face_shape"`
			Undertone classify.Undertone `json:"undertone"`
			NoseShape classify.NoseShape `json:"nose_shape"`
			Family    string             `json:"family"`
			Advice    advice.Bundle      `json:"advice"`
		}{face, undertone, nose, advice.Family(undertone), bundle})
	}

	fmt.Printf("Face shape: %s\nUndertone:  %s\nNose:       %s\n",
		face.Description(), undertone.Description(), nose.Description())
	return render.WriteAdvice(os.Stdout, bundle)
}
