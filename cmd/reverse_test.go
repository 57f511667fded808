package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func Test_reverseExec(t *testing.T) {
	type args struct {
		cmd        *cobra.Command
		args       []string
		complement string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"reverse an inline sequence",
			args{
				cmd:        reverseCmd,
				args:       []string{"ATGC"},
				complement: "false",
			},
			">arg--reversed\nCGTA\n",
		},
		{
			"reverse complement an inline sequence",
			args{
				cmd:        reverseCmd,
				args:       []string{"ATGC"},
				complement: "true",
			},
			">arg--reversed\nGCAT\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "reversed.fa")
			reverseCmd.Flags().Set("out", out)
			reverseCmd.Flags().Set("complement", tt.args.complement)

			reverseExec(tt.args.cmd, tt.args.args)

			dat, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if string(dat) != tt.want {
				t.Errorf("wrote %q, want %q", dat, tt.want)
			}
		})
	}
}
