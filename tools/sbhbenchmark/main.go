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

// sbhbenchmark is the repeated-trials CLI front end (§6), built with
// getopt exactly as sbhreconstruct is, but farming independent trials
// out across github.com/pbenner/threadpool the same way
// tools/sequenceSimilarity.go pools independent per-sequence work --
// each individual reconstruct() call stays single-threaded (§5), only
// the outer trial loop runs concurrently.
package main

/* -------------------------------------------------------------------------- */

import (
  "fmt"
  "log"
  "math/rand"
  "os"
  "strconv"
  "sync"

  "github.com/pborman/getopt"
  "github.com/pbenner/threadpool"

  "github.com/pbenner/sbh"
  "github.com/pbenner/sbh/config"
  "github.com/pbenner/sbh/distance"
  "github.com/pbenner/sbh/gen"
  "github.com/pbenner/sbh/lib/progress"
  "github.com/pbenner/sbh/store"
)

/* -------------------------------------------------------------------------- */

type Config struct {
  Length      int
  K           int
  PosError    float64
  NegError    float64
  Candidates  int
  Repetitions int
  Trials      int
  Threads     int
  Settings    string
  DatabaseDSN string
  Verbose     int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

type trialResult struct {
  store.Row
}

// runTrial reconstructs one randomly generated, error-corrupted spectrum
// and scores it against its own ground truth, mirroring benchmark_sbh.py's
// run_single_trial.
func runTrial(cfg Config, cc config.Config, repeat int, rng *rand.Rand) trialResult {
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
    Seed:           rng.Int63(),
  }

  result, err := sbh.Reconstruct(kmers, cfg.Length, cfg.K, opts)
  if err != nil {
    log.Fatal(err)
  }

  editDistance := distance.Levenshtein(original, result.Sequence)
  accuracy := distance.Similarity(original, result.Sequence)

  return trialResult{store.Row{
    K:                   cfg.K,
    N:                   cfg.Length,
    SeqLength:           len(result.Sequence),
    ErrorRate:           cfg.PosError + cfg.NegError,
    OriginalLength:      len(original),
    ReconstructedLength: len(result.Sequence),
    Coverage:            result.SpectrumCoverage,
    Accuracy:            accuracy,
    EditDistance:        editDistance,
    RuntimeMs:           result.ElapsedMs,
    IsValid:             len(result.Sequence) == cfg.Length,
    Success:             !result.Incomplete && accuracy == 1.0,
    Repeat:              repeat,
  }}
}

func csvRow(r store.Row) string {
  return fmt.Sprintf("%d,%d,%d,%.4f,%d,%d,%.4f,%.4f,%d,%d,%t,%t,%d",
    r.K, r.N, r.SeqLength, r.ErrorRate, r.OriginalLength, r.ReconstructedLength,
    r.Coverage, r.Accuracy, r.EditDistance, r.RuntimeMs, r.IsValid, r.Success, r.Repeat)
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

func runBenchmark(cfg Config, cc config.Config, baseSeed int64) {
  var db *store.Store
  if cfg.DatabaseDSN != "" {
    s, err := store.Open(cfg.DatabaseDSN)
    if err != nil {
      log.Fatal(err)
    }
    defer s.Close()
    db = s
  }

  totalTrials := cfg.Repetitions * cfg.Trials
  results := make([]store.Row, totalTrials)

  PrintStderr(cfg, 1, "Running %d trials across %d threads... ", totalTrials, cfg.Threads)
  pb := progress.New(totalTrials, 10)
  pool := threadpool.New(cfg.Threads, 100*cfg.Threads)
  pool.RangeJob(0, totalTrials, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    repeat := i / cfg.Trials
    // deterministic per-trial seed: independent of scheduling order,
    // so repeated runs reproduce the same per-trial spectra (§5, §8.3)
    rng := rand.New(rand.NewSource(baseSeed + int64(i)))
    results[i] = runTrial(cfg, cc, repeat, rng).Row
    if cfg.Verbose >= 1 {
      pb.PrintStderr(i + 1)
    }
    return nil
  })

  fmt.Println("k,n,seq_length,error_rate,original_length,reconstructed_length,coverage,accuracy,edit_distance,runtime,is_valid,success,repeat")
  var mu sync.Mutex
  for _, r := range results {
    fmt.Println(csvRow(r))
    if db != nil {
      mu.Lock()
      if err := db.InsertRun(r); err != nil {
        PrintStderr(cfg, 1, "store: %s\n", err)
      }
      mu.Unlock()
    }
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  cfg := Config{}
  options := getopt.New()

  optLength      := options.IntLong("length", 0, 300, "target reconstruction length n")
  optK           := options.IntLong("k", 0, 8, "k-mer length")
  optError       := options.StringLong("error", 0, "0", "symmetric pos/neg error rate (overridden by pos_error/neg_error if set)")
  optPosError    := options.StringLong("pos_error", 0, "", "positive error rate")
  optNegError    := options.StringLong("neg_error", 0, "", "negative error rate")
  optCandidates  := options.IntLong("candidates", 0, 0, "candidate_size override (0 = mode default)")
  optRepetitions := options.IntLong("repetitions", 0, 1, "number of (n,k,error) parameter repetitions")
  optTrials      := options.IntLong("trials", 0, 20, "trials per repetition")
  optThreads     := options.IntLong("threads", 0, 1, "number of worker threads")
  optSeed        := options.StringLong("seed", 0, "0", "base PRNG seed")
  optSettings    := options.StringLong("settings", 0, "", "path to settings.yaml")
  optDatabaseDSN := options.StringLong("db", 0, "", "optional MySQL DSN to persist run history")
  optVerbose     := options.CounterLong("verbose", 'v', "verbose level [-v or -vv]")
  optHelp        := options.BoolLong("help", 'h', "print help")

  options.SetParameters("")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optLength < *optK || *optK < 2 || *optTrials < 1 || *optRepetitions < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }

  errorRate, err := strconv.ParseFloat(*optError, 64)
  if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  posError, negError := errorRate, errorRate
  if *optPosError != "" {
    if posError, err = strconv.ParseFloat(*optPosError, 64); err != nil {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
  }
  if *optNegError != "" {
    if negError, err = strconv.ParseFloat(*optNegError, 64); err != nil {
      options.PrintUsage(os.Stderr)
      os.Exit(1)
    }
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
  cfg.Repetitions = *optRepetitions
  cfg.Trials = *optTrials
  cfg.Threads = *optThreads
  cfg.Settings = *optSettings
  cfg.DatabaseDSN = *optDatabaseDSN
  cfg.Verbose = *optVerbose

  cc := config.NewConfig(cfg.Settings)
  applyConfig(cc)

  runBenchmark(cfg, cc, seed)
}
