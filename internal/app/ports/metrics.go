package ports

type GameMetrics interface {
	RecordMove(cost int)
	RecordRotation(level int)
	RecordRejection()
}
