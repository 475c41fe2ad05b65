/*
Linked allocation file system

linkfs simulates the classic "linked list allocation" scheme from
operating systems courses on a small, volatile, in-memory block device.

A file's content is scattered over blocks that need not be contiguous.
Every block holds one character and a reference to the next block of
the same file. A file table maps each name to the file's size and the
index of its first block. A free map records which blocks are in use.

The major components of this project:

1. block - the fixed size array of blocks. Successor references and
data units are explicit option types (block.Next, block.Unit) rather
than sentinel integers.

2. freemap - a bitmap over block indices with a first-fit search in
ascending index order.

3. chain - linking a set of blocks into a chain and walking a chain
with cycle detection.

4. table - the file table, which lists files in insertion order.

5. linkfs (this package) - the Device, which owns the three structures
above and implements create, read, delete, list and snapshot on top of
them.

6. render and shell - presentation: table rendering of the device and a
line oriented command loop. cmd/linkfs wires them to a terminal.

Using a Device

	dev := linkfs.NewDefault() // 32 blocks
	if err := dev.Create("a.txt", "hi"); err != nil {
		log.Fatal(err)
	}
	content, err := dev.Read("a.txt") // "hi"
	if err != nil {
		log.Fatal(err)
	}
	for _, b := range dev.Snapshot() {
		fmt.Println(b.Index, b.Free, b.Data, b.Next)
	}

Allocation is first-fit: a file of n characters takes the n lowest free
blocks, all or nothing. Errors are sentinel values to be checked with
errors.Is: ErrAlreadyExists, ErrInsufficientSpace, ErrNotFound,
ErrEmptyFile, ErrInvalidName and ErrInvalidContent. A chain that loops
or leaks into another file is a bug in the engine and causes a panic
wrapping ErrCorrupt; Verify reports the same conditions as an error.

Every operation holds the device lock for its whole duration so other
goroutines see either the state before or the state after an operation.
*/
package linkfs
