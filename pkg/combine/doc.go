/*
Package combine packs named values into a shared accumulator as obfuscated,
printable text.

# How it works:

Each call takes a variable name and a plain text value.
The value is screened in place with a repeating XOR key (see the xor
package), the resulting bytes are Base64 encoded, and the name followed
immediately by the encoded text is appended to the accumulator.
Repeated calls against the same Accumulator build up a flat sequence of
name/value pairs suitable for transport or embedding.

The append is all-or-nothing: a failed call leaves the accumulator exactly as
it was. The caller's value buffer is a different story, since the cipher
operates in place. After a successful call it holds ciphertext, not plain
text, and should be treated as consumed.

# Important note:

No delimiter separates a name from its encoded value, or one pair from the
next. The format is write-only: it cannot be parsed back without an external
convention for telling names apart from Base64 text. That matches its
purpose, which is obfuscated one-way transport rather than round-tripping.

# General guidelines:
  - One Combiner per shared key; it's safe for concurrent use as long as
    concurrent calls don't target the same Accumulator or value buffer.
  - Calls that target the same Accumulator must be serialized by the caller,
    or pairs could interleave mid-append.
  - Pre-size the Accumulator with NewAccumulator when the rough output size
    is known.
*/
package combine
