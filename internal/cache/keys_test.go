package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "gateway",
			objectType:  "trending_topics",
			identifier:  "gemini-2.5-flash",
			paramsKey:   nil,
			expectedKey: "samayak:gateway:trending_topics:gemini-2.5-flash",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "gateway",
			objectType:  "trending_topics",
			identifier:  "llama3",
			paramsKey:   []string{},
			expectedKey: "samayak:gateway:trending_topics:llama3",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "session",
			objectType:  "state",
			identifier:  "01J9Z",
			paramsKey:   []string{"v1", "en"},
			expectedKey: "samayak:session:state:01J9Z:v1_en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestTrendingTopicsKey(t *testing.T) {
	if got := TrendingTopicsKey("gpt-4o-mini"); got != "samayak:gateway:trending_topics:gpt-4o-mini" {
		t.Errorf("TrendingTopicsKey() = %v", got)
	}
}
