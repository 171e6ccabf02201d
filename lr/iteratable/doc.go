/*
Package iteratable implements iteratable container data structures.

Set is a special purpose set type, suitable mainly for implementing algorithms
around grammars and LR item sets. These kinds of algorithms are often more
straightforward to describe as set constructions and operations.

Set membership is decided by an equality predicate supplied by the client,
not by identity. To keep membership tests fast, elements are bucketed by a
client supplied key function. Elements considered equal must produce the
same key; elements with equal keys are still compared by the predicate.

Union is destructive; it modifies its receiver. All other operations leave
their receivers untouched.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package iteratable
