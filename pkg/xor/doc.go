/*
Package xor implements the repeating-key XOR cipher used to screen values
before they are encoded and packed into an accumulator.

Note that this is NOT encryption, since it is easily reversible.
It falls squarely under the obfuscation category, and is NOT recommended for
security critical use.
It's still useful for preventing passive observation of plain text values,
since reversing it generally requires knowledge of the original key.

# How it works:

Every byte of the input is combined with a key byte using bitwise XOR.
Key bytes are consumed cyclically, like a ring buffer: when the last key byte
has been used, the next input byte is combined with the first key byte again.
Applying the same key twice restores the original bytes, which is what makes
the cipher symmetric.

An optional starting offset shifts where in the key the cycle begins.
This adds a little variation when the same key screens more than one payload.
The same key and offset must be used to reverse the process; anything else
yields garbled output.

# General guidelines:
  - Longer keys are better, but have limited usefulness with a short payload.
  - Keys generated from the OS entropy pool (GenKey, GenKeyAndOffset) are
    better than hand-picked ones.
  - A random offset is recommended, but not required.
*/
package xor
