package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/disc/internal/disc"
	"github.com/abhisek/disc/internal/report"
	"github.com/abhisek/disc/internal/session"
	"github.com/abhisek/disc/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive assessment",
	Long: "Score 20 answers (1 = Strongly Disagree ... 4 = Strongly Agree) given in\n" +
		"question order with --values, or as a JSON document with --answers:\n\n" +
		`  {"name": "Ada", "values": [4, 3, ...]}` + "\n" +
		`  {"answers": [{"questionId": 1, "value": 4}, ...]}`,
	Example: "  disc score --values 4,4,4,4,4,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1\n" +
		"  disc score --answers answers.json --format json\n" +
		"  cat answers.json | disc score --answers - --save --name Ada",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		answers, name, err := readAnswers(cmd)
		if err != nil {
			return err
		}

		result, err := disc.Evaluate(answers)
		if err != nil {
			var incomplete *disc.IncompleteInputError
			if errors.As(err, &incomplete) {
				return fmt.Errorf("cannot score: %w", err)
			}
			return err
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if flagName, _ := cmd.Flags().GetString("name"); flagName != "" {
			name = flagName
		}
		name = strings.TrimSpace(name)
		now := time.Now()

		p := report.NewProfile(d.lang, name, now, result)
		if save, _ := cmd.Flags().GetBool("save"); save {
			if len([]rune(name)) < session.MinNameLength {
				return fmt.Errorf("--save needs --name: %w", session.ErrNameTooShort)
			}
			rec := &store.ResultRecord{
				UserName:    name,
				Language:    d.lang.String(),
				Scores:      result.Scores,
				Primary:     result.Primary.Dimension,
				Secondary:   result.Secondary.Dimension,
				Answers:     answers,
				StartedAt:   now,
				CompletedAt: now,
			}
			if err := d.store.Results().Save(cmd.Context(), rec); err != nil {
				return err
			}
			d.logger.Info("result saved", zap.String("result_id", rec.UID))
			p.ID = rec.UID
		}

		return newRenderer(cmd, d.lang).Profile(cmd.OutOrStdout(), format, p)
	},
}

// readAnswers takes answers from --values or --answers.
func readAnswers(cmd *cobra.Command) (disc.AnswerSet, string, error) {
	values, _ := cmd.Flags().GetString("values")
	path, _ := cmd.Flags().GetString("answers")

	switch {
	case values != "" && path != "":
		return nil, "", fmt.Errorf("use --values or --answers, not both")
	case values != "":
		set, err := parseValues(values)
		return set, "", err
	case path != "":
		raw, err := readInput(cmd, path)
		if err != nil {
			return nil, "", err
		}
		return parseAnswers(raw)
	default:
		return nil, "", fmt.Errorf("one of --values or --answers is required")
	}
}

// readInput reads path, or standard input for "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	return raw, nil
}

func init() {
	scoreCmd.Flags().String("answers", "", `JSON answers file ("-" for stdin)`)
	scoreCmd.Flags().String("values", "", "Comma-separated answer values in question order")
	scoreCmd.Flags().String("format", "text", "Output format: "+strings.Join(report.Formats(), ", "))
	scoreCmd.Flags().Bool("save", false, "Save the result to history")
	scoreCmd.Flags().String("name", "", "Name to record with the result")
}
