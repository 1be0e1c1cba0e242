package port

// ResultCache is a TTL cache in front of document-result reads.
type ResultCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
}
