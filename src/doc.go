/*
Package idmatch implements the identifier-completion engine behind a
language-agnostic autocomplete service: given a pool of identifiers
gathered from source buffers and tag files and a short query typed by a
user, it returns the best-matching identifiers ranked by a fuzzy-match
order tuned for source-code tokens.

Matching is Unicode-aware. Queries and candidates are segmented into
grapheme clusters, normalized through NFD, and compared with smart case
and smart base semantics: a lowercase unaccented query character
matches case- and accent-insensitively while an uppercase or accented
one is strict. Expensive per-character analysis is amortized across
calls by interning code points, characters and candidates in
process-wide repositories.
*/
package idmatch
