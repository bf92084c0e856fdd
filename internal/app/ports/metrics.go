package ports

type SyncMetrics interface {
	RecordSyncSuccess(kind HazardOpKind)
	RecordSyncFailure(kind HazardOpKind)
	RecordSyncDropped(kind HazardOpKind)
}

type PathMetrics interface {
	RecordPathSuccess()
	RecordPathRejected()
	RecordPathFailure()
}
