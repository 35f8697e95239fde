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

package sbh

/* -------------------------------------------------------------------------- */

import (
  "errors"
  "testing"
)

func TestNewSpectrumValid(test *testing.T) {
  kmers := []KMer{"ACG", "CGT", "GTA"}
  s, err := NewSpectrum(kmers, 5, 3)
  if err != nil {
    test.Fatal(err)
  }
  if s.Size() != 3 {
    test.Errorf("expected size 3, got %d", s.Size())
  }
  if s.ExpectedCount != 3 {
    test.Errorf("expected expected_count 3, got %d", s.ExpectedCount)
  }
}

func TestNewSpectrumRejectsKTooSmall(test *testing.T) {
  _, err := NewSpectrum([]KMer{"A"}, 5, 1)
  if !errors.Is(err, ErrValidation) {
    test.Error("expected a validation error for k < 2")
  }
}

func TestNewSpectrumRejectsKTooLarge(test *testing.T) {
  _, err := NewSpectrum([]KMer{}, 5, 65)
  if !errors.Is(err, ErrValidation) {
    test.Error("expected a validation error for k > 64")
  }
}

func TestNewSpectrumRejectsNLessThanK(test *testing.T) {
  _, err := NewSpectrum([]KMer{"ACGT"}, 3, 4)
  if !errors.Is(err, ErrValidation) {
    test.Error("expected a validation error for n < k")
  }
}

func TestNewSpectrumRejectsEmpty(test *testing.T) {
  _, err := NewSpectrum(nil, 10, 3)
  if !errors.Is(err, ErrValidation) {
    test.Error("expected a validation error for empty spectrum")
  }
}

func TestNewSpectrumRejectsAlphabetViolation(test *testing.T) {
  _, err := NewSpectrum([]KMer{"ACX"}, 5, 3)
  if !errors.Is(err, ErrValidation) {
    test.Error("expected a validation error for alphabet violation")
  }
}

func TestSpectrumUniqueAndCounts(test *testing.T) {
  s, err := NewSpectrum([]KMer{"ACG", "ACG", "CGT"}, 5, 3)
  if err != nil {
    test.Fatal(err)
  }
  if len(s.Unique()) != 2 {
    test.Errorf("expected 2 unique k-mers, got %d", len(s.Unique()))
  }
  counts := s.Counts()
  if counts["ACG"] != 2 || counts["CGT"] != 1 {
    test.Errorf("unexpected counts: %v", counts)
  }
}
