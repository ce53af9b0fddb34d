/*
Package pcfg is a probabilistic context-free grammar toolbox: CNF
normalization, CYK and Earley recognition, and SPPF forest construction
with a probability fixpoint. Package structure is as follows:

■ symbol: interned terminals and nonterminals, sentences, spans.

■ grammar: weighted productions, per-LHS probability, nullable-probability
fixpoint.

■ cnf: Chomsky Normal Form grammars and the START/TERM/BIN/DEL/UNIT
normalizer.

■ cyk: the CYK recognizer over a CNF grammar.

■ earley: the Earley chart recognizer over an arbitrary grammar, with
nullable "magic" items and back-pointer edges.

■ sppf: Shared Packed Parse Forest construction from an Earley chart,
and the probability fixpoint over it.

The base package ties the above together behind one Parser interface,
for callers who don't need to choose a recognizer by hand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcfg
