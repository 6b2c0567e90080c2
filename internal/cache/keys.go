package cache

import "strings"

const (
	GlobalKeyPrefix = "shulelink"

	// ContentService is the service segment of every generated-content key.
	ContentService = "content"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// TopicIdentifier builds the identifier segment for subject/grade/topic
// content, so "Science", "5", "Water Cycle" and "science", " 5", "water cycle"
// share one key.
func TopicIdentifier(subject, grade, topic string) string {
	return strings.Join([]string{normalize(subject), normalize(grade), normalize(topic)}, ":")
}

// TopicPrefix is the key prefix covering every cached object of objectType
// for one topic. It ends in ":" so "plants" does not match "plants-and-animals".
func TopicPrefix(objectType, subject, grade, topic string) string {
	return GenerateCacheKey(ContentService, objectType, TopicIdentifier(subject, grade, topic)) + ":"
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, ":", "")
	return strings.Join(strings.Fields(s), "-")
}
