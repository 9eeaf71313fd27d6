package dataset

// MockLoader is a mock implementation of the Loader interface for testing.
type MockLoader struct {
	LoadFunc func(path string) (*Dataset, error)
}

func (m *MockLoader) Load(path string) (*Dataset, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return nil, nil
}
