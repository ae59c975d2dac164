/*
Package fuzzy implements approximate matching of short queries against
emoji names and shortcodes.

A query matches a candidate if all of its characters appear, in order, as a
(not necessarily contiguous) subsequence of the candidate's characters.
Matching is case-insensitive and ignores diacritical marks, so "pinata"
matches "piñata".

Scoring

Matches are ranked by a Score, where higher values denote better matches.
Alignments are found with fzf's matching algorithms: a literal substring is
looked up first, and only if there is none, fzf's fuzzy alignment is used.
A score is composed of

  - a penalty for every candidate character left unmatched between the first
    and the last matched character (gaps),
  - a bonus if the match starts at the beginning of the candidate or at the
    start of a word,
  - fzf's own rating of the alignment, scaled to a bounded bonus, and
  - a bonus for the ratio of query length to candidate length.

The bonuses taken together never outweigh a single gap: a query found as a
literal substring of one candidate always outranks a query which needs gaps
in another one.

A query consisting of combining marks only folds to nothing and matches no
candidate. The empty query matches every candidate with score Lowest.

Usage

For one-off matches use Match. When matching many candidates, prepare the
query once as a Pattern and the candidates as Targets:

  p := fuzzy.NewPattern("rckt")
  if score, ok := p.Score(fuzzy.NewTarget("rocket")); ok {
      …
  }

Targets are immutable and may be shared between goroutines.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fuzzy
