/*
Package hyphenator provides TeX-style hyphenation based on Frank Liang's pattern algorithm.

Patterns are loaded once into a Trie (see LoadPatterns), after that the trie is never modified and a single
Hyphenator may be shared by any number of goroutines. For every word all substrings of ".word." are looked
up in the trie, weights of matching patterns are merged by taking maximum at each letter gap and odd values
mark allowed breaks. Hyphenation never leaves less than two letters at either end of a word.

There is no exceptions list here and no language detection - caller decides which dictionary to use.
*/
package hyphenator
