package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func Test_indexExec(t *testing.T) {
	out := filepath.Join(t.TempDir(), "subset.fa")

	indexCmd.Flags().Set("start", "0")
	indexCmd.Flags().Set("end", "3")
	indexCmd.Flags().Set("out", out)

	type args struct {
		cmd  *cobra.Command
		args []string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"subset an inline sequence",
			args{
				cmd:  indexCmd,
				args: []string{"ATTAAAAAAAA"},
			},
			">arg\nATT\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indexExec(tt.args.cmd, tt.args.args)

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
