// core/analysis/regions.go
package analysis

import "protscan-core/aminoacid"

// DefaultWindow is the sliding-window size used when callers pass 0.
const DefaultWindow = 7

// Thresholds are strict: a window qualifies only when its qualifying fraction
// exceeds the constant, never on equality.
const (
	hydrophobicFraction = 0.70
	chargedFraction     = 0.50
)

// ScanRegions slides a window of size window over seq and records maximal
// contiguous runs of qualifying windows, independently for the hydrophobic
// and charged passes. A window starting at i merges into the previous region
// only when that region's End equals i exactly; any gap, even of one
// position, starts a new region. Sequences shorter than the window yield an
// empty set.
func ScanRegions(seq string, window int) RegionSet {
	if window <= 0 {
		window = DefaultWindow
	}
	var rs RegionSet
	if len(seq) < window {
		return rs
	}

	for i := 0; i+window <= len(seq); i++ {
		hydrophobic := 0
		for j := i; j < i+window; j++ {
			if aminoacid.Table[seq[j]].Hydrophobic {
				hydrophobic++
			}
		}
		if float64(hydrophobic)/float64(window) <= hydrophobicFraction {
			continue
		}
		if n := len(rs.Hydrophobic); n > 0 && rs.Hydrophobic[n-1].End == i {
			r := &rs.Hydrophobic[n-1]
			r.End = i + window
			r.Seq = seq[r.Start:r.End]
			continue
		}
		rs.Hydrophobic = append(rs.Hydrophobic, Region{Start: i, End: i + window, Seq: seq[i : i+window]})
	}

	for i := 0; i+window <= len(seq); i++ {
		charged := 0
		for j := i; j < i+window; j++ {
			if aminoacid.Table[seq[j]].Charge != 0 {
				charged++
			}
		}
		if float64(charged)/float64(window) <= chargedFraction {
			continue
		}
		if n := len(rs.Charged); n > 0 && rs.Charged[n-1].End == i {
			r := &rs.Charged[n-1]
			r.End = i + window
			r.Seq = seq[r.Start:r.End]
			// NetCharge stays as computed from the first qualifying window.
			continue
		}
		net := 0.0
		for j := i; j < i+window; j++ {
			net += aminoacid.Table[seq[j]].Charge
		}
		rs.Charged = append(rs.Charged, ChargedRegion{
			Region:    Region{Start: i, End: i + window, Seq: seq[i : i+window]},
			NetCharge: net,
		})
	}

	return rs
}
