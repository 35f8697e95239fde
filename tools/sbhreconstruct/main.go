/* Copyright (C) 2019 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// sbhreconstruct is the single-run CLI front end (§6, "bit-exact
// reproduction" surface), built with getopt exactly as
// tools/sequenceSimilarity and tools/countKmers are.
package main

/* -------------------------------------------------------------------------- */

import (
  "fmt"
  "log"
  "math/rand"
  "os"
  "strconv"
  "time"

  "github.com/pborman/getopt"

  "github.com/pbenner/sbh"
  "github.com/pbenner/sbh/config"
  "github.com/pbenner/sbh/distance"
  "github.com/pbenner/sbh/gen"
)

/* -------------------------------------------------------------------------- */

type Config struct {
  Length     int
  K          int
  PosError   float64
  NegError   float64
  Candidates int
  Seed       int64
  Settings   string
  Header     bool
  Verbose    int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func csvRow(k, n, seqLength int, errorRate float64, originalLength, reconstructedLength int,
  coverage, accuracy float64, editDistance int, runtimeMs int64, isValid, success bool, repeat int) string {
  return fmt.Sprintf("%d,%d,%d,%.4f,%d,%d,%.4f,%.4f,%d,%d,%t,%t,%d",
    k, n, seqLength, errorRate, originalLength, reconstructedLength,
    coverage, accuracy, editDistance, runtimeMs, isValid, success, repeat)
}

/* -------------------------------------------------------------------------- */

func runOnce(cfg Config, cc config.Config) {
  rng := rand.New(rand.NewSource(cfg.Seed))

  original := gen.RandomDNA(cfg.Length, rng)
  spectrumStrings := gen.CorruptSpectrum(gen.Spectrum(original, cfg.K), cfg.K, cfg.NegError, cfg.PosError, rng)

  kmers := make([]sbh.KMer, len(spectrumStrings))
  for i, s := range spectrumStrings {
    kmers[i] = sbh.KMer(s)
  }

  opts := sbh.Options{
    CandidateSize:  cfg.Candidates,
    ErrorThreshold: cc.Budgets.ErrorThreshold,
    MaxIterations:  cc.Budgets.MaxIterationsPerN * cfg.Length,
    MaxBacktracks:  cc.Budgets.MaxBacktracks,
    WallTimeMs:     cc.Budgets.WallTimeMs,
    Seed:           cfg.Seed,
  }

  PrintStderr(cfg, 1, "Reconstructing sequence of length %d (k=%d)... ", cfg.Length, cfg.K)
  result, err := sbh.Reconstruct(kmers, cfg.Length, cfg.K, opts)
  if err != nil {
    PrintStderr(cfg, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(cfg, 1, "done\n")

  editDistance := distance.Levenshtein(original, result.Sequence)
  accuracy := distance.Similarity(original, result.Sequence)
  isValid := len(result.Sequence) == cfg.Length
  success := !result.Incomplete && accuracy == 1.0
  errorRate := cfg.PosError + cfg.NegError

  if cfg.Header {
    fmt.Println("k,n,seq_length,error_rate,original_length,reconstructed_length,coverage,accuracy,edit_distance,runtime,is_valid,success,repeat")
  }
  fmt.Println(csvRow(cfg.K, cfg.Length, len(result.Sequence), errorRate, len(original), len(result.Sequence),
    result.SpectrumCoverage, accuracy, editDistance, result.ElapsedMs, isValid, success, 0))
}

// applyConfig overlays the settings.yaml-derived mode thresholds and
// candidate sizes onto the core package's runtime defaults, so
// operators can retune the §4.1/§4.6 heuristics without recompiling.
func applyConfig(cc config.Config) {
  sbh.SetProfileThresholds(sbh.ProfileThresholds{
    ConservativeCoverageLow:  cc.ModeThresholds.ConservativeCoverageLow,
    ConservativeCoverageHigh: cc.ModeThresholds.ConservativeCoverageHigh,
    ConservativeDuplication:  cc.ModeThresholds.ConservativeDuplication,
    ConservativeEntropy:      cc.ModeThresholds.ConservativeEntropy,
    AggressiveCoverageLow:    cc.ModeThresholds.AggressiveCoverageLow,
    AggressiveCoverageHigh:   cc.ModeThresholds.AggressiveCoverageHigh,
    AggressiveEntropy:        cc.ModeThresholds.AggressiveEntropy,
  })
  sbh.SetCandidateSizes(sbh.CandidateSizes{
    Conservative: cc.CandidateSizes.Conservative,
    Aggressive:   cc.CandidateSizes.Aggressive,
    Rescue:       cc.CandidateSizes.Rescue,
  })
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  cfg := Config{}
  options := getopt.New()

  optLength     := options.IntLong("length", 0, 300, "target reconstruction length n")
  optK          := options.IntLong("k", 0, 8, "k-mer length")
  optPosError   := options.StringLong("pos_error", 0, "0", "positive error rate")
  optNegError   := options.StringLong("neg_error", 0, "0", "negative error rate")
  optCandidates := options.IntLong("candidates", 0, 0, "candidate_size override (0 = mode default)")
  optSeed       := options.StringLong("seed", 0, "0", "PRNG seed")
  optSettings   := options.StringLong("settings", 0, "", "path to settings.yaml")
  optHeader     := options.BoolLong("header", 0, "print the CSV header row first")
  optVerbose    := options.CounterLong("verbose", 'v', "verbose level [-v or -vv]")
  optHelp       := options.BoolLong("help", 'h', "print help")

  options.SetParameters("")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optLength < *optK || *optK < 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  posError, err := strconv.ParseFloat(*optPosError, 64)
  if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  negError, err := strconv.ParseFloat(*optNegError, 64)
  if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  seed, err := strconv.ParseInt(*optSeed, 10, 64)
  if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }

  cfg.Length = *optLength
  cfg.K = *optK
  cfg.PosError = posError
  cfg.NegError = negError
  cfg.Candidates = *optCandidates
  cfg.Seed = seed
  cfg.Settings = *optSettings
  cfg.Header = *optHeader
  cfg.Verbose = *optVerbose

  cc := config.NewConfig(cfg.Settings)
  applyConfig(cc)

  start := time.Now()
  runOnce(cfg, cc)
  PrintStderr(cfg, 2, "total runtime: %s\n", time.Since(start))
}
