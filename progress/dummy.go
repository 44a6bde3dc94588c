package progress

// DummyProgBar is a dummy implementation of the ProgressBar interface for testing purposes
type DummyProgBar struct{}

func (dpb *DummyProgBar) Add(int) {}

func (dpb *DummyProgBar) Start() {}

func (dpb *DummyProgBar) Stop(bool) {}

func (dpb *DummyProgBar) SetToSpinner() {}

func (dpb *DummyProgBar) SetToProgressBar() {}

func (dpb *DummyProgBar) StopInterrupt(string) {}

func (dpb *DummyProgBar) UpdateBaseMsg(string) {}

func (dpb *DummyProgBar) UpdateMax(int) {}

func (dpb *DummyProgBar) Increment() {}

func (dpb *DummyProgBar) UpdateSuccessMsg(string) {}

func (dpb *DummyProgBar) UpdateErrorMsg(string) {}

func (dpb *DummyProgBar) SnapshotTask() {}
