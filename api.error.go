package webhdfs

// RemoteExceptionResponse is the JSON envelope of a WebHDFS error body.
// https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Error_Responses
type RemoteExceptionResponse struct {
	RemoteException *RemoteException `json:"RemoteException"`
}

func (e RemoteExceptionResponse) Exception() error {
	if e.RemoteException == nil {
		return nil
	}
	return e.RemoteException
}
