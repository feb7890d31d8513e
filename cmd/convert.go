package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunitj/fastx-mcp/internal/content"
	"github.com/sunitj/fastx-mcp/internal/seq"
	"github.com/sunitj/fastx-mcp/internal/validate"
)

var (
	convertIn      string
	convertOut     string
	convertSummary bool
)

// convertCmd converts a local GenBank file to FASTA, no server needed.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a GenBank file to FASTA",
	Long: `Convert a GenBank file to FASTA.

Reads from the file passed with -i, or stdin when -i is omitted or "-".
Writes to the file passed with -o, or stdout. --summary prints record
counts to stderr.`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertIn, "in", "i", "", "path to a GenBank file, or - for stdin")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "path for the FASTA output, or - for stdout")
	convertCmd.Flags().BoolVar(&convertSummary, "summary", false, "print record counts to stderr")
}

func runConvert(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if convertIn == "" || convertIn == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(convertIn)
	}
	if err != nil {
		return err
	}

	text := string(raw)
	if err := validate.GenBank(text); err != nil {
		return err
	}

	fasta, err := seq.GenBankToFasta(text, content.EncodingPlain)
	if err != nil {
		return err
	}

	if convertSummary {
		summary, err := seq.ConversionSummary(text, content.EncodingPlain)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "records: %d\ntotal length: %d\n", summary.RecordCount, summary.TotalLength)
	}

	if convertOut == "" || convertOut == "-" {
		fmt.Print(fasta)
		return nil
	}
	return os.WriteFile(convertOut, []byte(fasta), 0o644)
}
