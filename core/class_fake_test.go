package core

import "owslave/protocol"

// fakeClass is a recording device class for dispatcher and registry
// tests. Alert methods are defined unconditionally; only the tag-split
// testEntry helpers decide whether they are composed into an Entry.
type fakeClass struct {
	fixture  []byte
	checkErr error

	initCalls  int
	pollCalls  int
	doneCalls  int
	alerting   bool
	alertData  []byte
	writes     [][]byte
	writeCalls int
}

func (f *fakeClass) Init() { f.initCalls++ }
func (f *fakeClass) Poll() { f.pollCalls++ }

func (f *fakeClass) ReadLen(ch uint8) uint8 { return uint8(len(f.fixture)) }

func (f *fakeClass) Read(ch uint8, buf *protocol.MsgBuffer) {
	_ = buf.Fill(f.fixture)
}

func (f *fakeClass) ReadDone(ch uint8) { f.doneCalls++ }

func (f *fakeClass) WriteCheck(ch uint8, data []byte) error {
	return f.checkErr
}

func (f *fakeClass) Write(ch uint8, data []byte) {
	f.writeCalls++
	cp := make([]byte, len(data))
	copy(cp, data)
	f.writes = append(f.writes, cp)
}

func (f *fakeClass) AlertCheck() bool { return f.alerting }

func (f *fakeClass) AlertFill(buf *protocol.MsgBuffer) {
	_ = buf.Fill(f.alertData)
}
