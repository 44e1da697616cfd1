// Package histogram turns sampled positions into a normalized empirical
// density over the symmetric domain [-L/2, L/2].
//
// # Boundary Policy
//
// Bin i covers the OPEN interval (-L/2 + i·w, -L/2 + (i+1)·w). A sample that
// lands exactly on a bin edge, including ±L/2, is counted in no bin. Samples
// outside the domain and non-finite samples are dropped as well.
//
// # Normalization
//
// density[i] = count[i] / w / N, where N is the total number of samples
// (binned or not). Σ density[i]·w is therefore at most 1.
package histogram
