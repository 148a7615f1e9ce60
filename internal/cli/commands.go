// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpca/cluster"
	"github.com/katalvlaran/lvpca/pca"
	"github.com/katalvlaran/lvpca/report"
)

func (a *app) newPCACommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pca",
		Short: "Standardize the table and report its principal components",
		Long: `Z-scores every selected column, decomposes the correlation structure and
prints eigenvalues, explained variance and loadings per component.

Example:
  lvpca pca --builtin penguins --columns flipper_length_mm,bill_length_mm,bill_depth_mm,body_mass_g
  lvpca pca --file data.csv --method svd -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.fit("pca")
			if err != nil {
				return err
			}
			summary := report.FromResult(res, a.v.GetInt("pca.components"))

			return a.write(cmd, summary)
		},
	}
	cmd.Flags().String("method", "jacobi", "eigen solver: jacobi or svd")
	cmd.Flags().Int("components", 0, "number of components to report (0 = all)")
	_ = a.v.BindPFlag("pca.method", cmd.Flags().Lookup("method"))
	_ = a.v.BindPFlag("pca.components", cmd.Flags().Lookup("components"))

	return cmd
}

func (a *app) newScoresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print per-row principal component scores (biplot data)",
		Long: `Runs the same analysis as "pca" and prints every row's scores, labelled
with the --group column when one is given.

Example:
  lvpca scores --builtin penguins --group species --components 2 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.fit("scores")
			if err != nil {
				return err
			}

			return a.write(cmd, report.ScoresFromResult(res, a.v.GetInt("scores.components")))
		},
	}
	cmd.Flags().String("method", "jacobi", "eigen solver: jacobi or svd")
	cmd.Flags().Int("components", 2, "number of components to print (0 = all)")
	_ = a.v.BindPFlag("scores.method", cmd.Flags().Lookup("method"))
	_ = a.v.BindPFlag("scores.components", cmd.Flags().Lookup("components"))

	return cmd
}

func (a *app) newCorrCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corr",
		Short: "Print the correlation matrix, optionally in dendrogram order",
		Long: `Prints the Pearson correlation matrix of the selected columns. With
--cluster the variables are grouped by agglomerative clustering on 1 − r
(1 − |r| with --absolute) and the matrix is reordered by the dendrogram.

Example:
  lvpca corr --builtin penguins --cluster average`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.loadTable()
			if err != nil {
				return err
			}
			corr, err := pca.Correlation(t.X, pca.WithColumns(t.columns...))
			if err != nil {
				return err
			}

			var (
				dg      *cluster.Dendrogram
				linkage cluster.Linkage
			)
			if name := a.v.GetString("corr.cluster"); name != "" {
				if linkage, err = cluster.ParseLinkage(name); err != nil {
					return err
				}
				var opts []cluster.DistanceOption
				if a.v.GetBool("corr.absolute") {
					opts = append(opts, cluster.Absolute())
				}
				dist, err := cluster.CorrelationDistance(corr, opts...)
				if err != nil {
					return err
				}
				if dg, err = cluster.Agglomerate(dist, linkage); err != nil {
					return err
				}
				a.log.WithField("order", dg.Order).Debug("clustered variables")
			}
			out, err := report.NewCorrelation(corr, t.columns, dg, linkage)
			if err != nil {
				return err
			}

			return a.write(cmd, out)
		},
	}
	cmd.Flags().String("cluster", "", "reorder by agglomerative clustering: average, single or complete")
	cmd.Flags().Bool("absolute", false, "cluster on 1 − |r| instead of 1 − r")
	_ = a.v.BindPFlag("corr.cluster", cmd.Flags().Lookup("cluster"))
	_ = a.v.BindPFlag("corr.absolute", cmd.Flags().Lookup("absolute"))

	return cmd
}

// fit loads the table and runs the pipeline with the solver configured under key.
func (a *app) fit(key string) (*pca.Result, error) {
	method, err := pca.ParseMethod(a.v.GetString(key + ".method"))
	if err != nil {
		return nil, err
	}
	t, err := a.loadTable()
	if err != nil {
		return nil, err
	}
	opts := []pca.Option{
		pca.WithMethod(method),
		pca.WithColumns(t.columns...),
		pca.WithLogger(a.log),
	}
	if t.labels != nil {
		opts = append(opts, pca.WithLabels(t.labels))
	}

	return pca.Run(t.X, opts...)
}

func (a *app) write(cmd *cobra.Command, v any) error {
	format, err := report.ParseFormat(a.v.GetString("output.format"))
	if err != nil {
		return err
	}

	return report.Encode(cmd.OutOrStdout(), v, format)
}
