// Package timeout provides a cooperative work/time budget shared by the IRV
// winner finder, the RAIRE search, and the assertion trimmer.
//
// There are no suspension points internal to those algorithms; instead each
// calls Timeout.QuickCheckTimeout at frequent, well-defined checkpoints (once
// per continuing-candidate set visited during winner finding, once per
// tree-node construction during trimming, once per frontier pop during
// search). Winner finding does not check once per ballot record. A
// Timeout owns no state shared across components — each algorithm run
// constructs its own.
package timeout
