package internal

// Reshaper deserializes a raw message payload and reshapes it into a plain
// JSON-shaped record tagged with the original bag timestamp.
type Reshaper func(timestamp int64, raw []byte) (interface{}, error)

// TopicSpec binds a recognized topic to its sink output id and reshaper.
// Additional topic types (GNSS, image, point cloud, pose, path) are new
// entries here, not new branches in the extractor.
type TopicSpec struct {
	Topic    string
	OutputID string
	Reshape  Reshaper
}

// DefaultTopics returns the built-in topic registry. Order is the emission
// order within one emitter tick.
func DefaultTopics() []TopicSpec {
	return []TopicSpec{
		{Topic: "/Imu", OutputID: "imu_json", Reshape: reshapeImu},
		{Topic: "/odom", OutputID: "odom_json", Reshape: reshapeOdom},
	}
}

// ExtractionResult holds the extracted record sequences keyed by topic, in
// storage order. It is built once by ExtractTopics and read-only afterwards.
type ExtractionResult struct {
	specs   []TopicSpec
	records map[string][]interface{}
	skipped int
}

// Topics returns the registry the result was extracted with.
func (r *ExtractionResult) Topics() []TopicSpec {
	return r.specs
}

// Records returns the extracted sequence for one topic, in storage order.
func (r *ExtractionResult) Records(topic string) []interface{} {
	return r.records[topic]
}

// Len returns the number of extracted records for one topic.
func (r *ExtractionResult) Len(topic string) int {
	return len(r.records[topic])
}

// Skipped returns the number of messages skipped due to decode failures.
func (r *ExtractionResult) Skipped() int {
	return r.skipped
}

// MessageSource yields stored messages in storage order.
type MessageSource interface {
	Messages(MessageFunc) error
}

// ExtractTopics iterates every message in the source and accumulates
// reshaped records for the topics in the registry. Messages on unrecognized
// topics are skipped silently; a message that fails to decode is logged,
// counted and skipped without aborting the scan.
func ExtractTopics(src MessageSource, specs []TopicSpec) (*ExtractionResult, error) {
	byTopic := make(map[string]*TopicSpec, len(specs))
	result := &ExtractionResult{
		specs:   specs,
		records: make(map[string][]interface{}, len(specs)),
	}
	for i := range specs {
		byTopic[specs[i].Topic] = &specs[i]
		result.records[specs[i].Topic] = []interface{}{}
	}

	err := src.Messages(func(conn *Connection, timestamp int64, data []byte) error {
		spec, ok := byTopic[conn.Topic]
		if !ok {
			return nil
		}
		record, err := spec.Reshape(timestamp, data)
		if err != nil {
			result.skipped++
			LogWarn("%v", &DecodeError{Topic: conn.Topic, MsgType: conn.MsgType, Err: err})
			return nil
		}
		result.records[conn.Topic] = append(result.records[conn.Topic], record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result.skipped > 0 {
		LogWarn("skipped %d corrupted message(s) during extraction", result.skipped)
	}
	return result, nil
}
