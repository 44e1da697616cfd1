// Package report renders the results of a sampling run.
//
// Outputs:
//   - EchoParameters: the console banner describing a configuration
//   - WriteConfiguration / WriteHistogram: tab-separated data files
//     (configuration.out, histogram.out) in the layout gnuplot expects
//   - HistogramScript / ConfigurationScript: gnuplot scripts overlaying the
//     sampled density on the analytic Boltzmann distribution
//   - WriteWorkbook: an XLSX workbook with summary, histogram and trajectory
//     sheets
//
// WriteFiles writes the data files and scripts into one directory; Plot runs
// gnuplot on a written script.
package report
