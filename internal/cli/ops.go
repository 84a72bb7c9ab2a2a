package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlalg/internal/problem"
)

type opCommand struct {
	op    string
	short string
	long  string
}

var opCommands = []opCommand{
	{problem.OpRank, "Print the rank of the matrix", "Reduce the matrix to echelon form and count its pivots."},
	{problem.OpDet, "Print the determinant of a square matrix", "Compute the determinant by fraction-free (Bareiss) elimination."},
	{problem.OpInverse, "Print the inverse of a square matrix", "Invert the matrix by Gauss-Jordan elimination, or report it singular."},
	{problem.OpNullSpace, "Print a basis of the null space", "Print the solutions of A·x = 0 as the columns of a matrix."},
	{problem.OpSolve, "Solve A·x = rhs", "Print one solution of the system given by the matrix and its rhs, or report that none exists."},
	{problem.OpJordan, "Print the Jordan form of a nilpotent matrix", "Print J and the Jordan basis P (as columns) with J = P⁻¹·A·P."},
}

func (a *app) newOpCommand(c opCommand) *cobra.Command {
	return &cobra.Command{
		Use:   c.op + " PROBLEM",
		Short: c.short,
		Long:  c.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := a.evaluate(args[0], c.op)
			if err != nil {
				return err
			}

			return a.render(cmd.OutOrStdout(), rep)
		},
	}
}
