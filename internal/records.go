package internal

// Plain JSON-shaped records produced by the extractor. Field names mirror
// the source message fields; covariance arrays are flattened to ordered
// numeric sequences.

// Vec3JSON is a plain x/y/z triple
type Vec3JSON struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// QuatJSON is a plain x/y/z/w quaternion
type QuatJSON struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// PoseJSON mirrors geometry_msgs/Pose
type PoseJSON struct {
	Position    Vec3JSON `json:"position" yaml:"position"`
	Orientation QuatJSON `json:"orientation" yaml:"orientation"`
}

// PoseWithCovarianceJSON mirrors geometry_msgs/PoseWithCovariance
type PoseWithCovarianceJSON struct {
	Pose       PoseJSON  `json:"pose" yaml:"pose"`
	Covariance []float64 `json:"covariance" yaml:"covariance"`
}

// TwistJSON mirrors geometry_msgs/Twist
type TwistJSON struct {
	Linear  Vec3JSON `json:"linear" yaml:"linear"`
	Angular Vec3JSON `json:"angular" yaml:"angular"`
}

// TwistWithCovarianceJSON mirrors geometry_msgs/TwistWithCovariance
type TwistWithCovarianceJSON struct {
	Twist      TwistJSON `json:"twist" yaml:"twist"`
	Covariance []float64 `json:"covariance" yaml:"covariance"`
}

// ImuRecord is the reshaped form of one IMU message, tagged with the
// original bag timestamp in nanoseconds since the epoch.
type ImuRecord struct {
	Timestamp          int64    `json:"timestamp" yaml:"timestamp"`
	Orientation        QuatJSON `json:"orientation" yaml:"orientation"`
	AngularVelocity    Vec3JSON `json:"angular_velocity" yaml:"angular_velocity"`
	LinearAcceleration Vec3JSON `json:"linear_acceleration" yaml:"linear_acceleration"`
}

// OdomRecord is the reshaped form of one odometry message.
type OdomRecord struct {
	Timestamp int64                   `json:"timestamp" yaml:"timestamp"`
	Pose      PoseWithCovarianceJSON  `json:"pose" yaml:"pose"`
	Twist     TwistWithCovarianceJSON `json:"twist" yaml:"twist"`
}

func reshapeImu(timestamp int64, raw []byte) (interface{}, error) {
	msg, err := DecodeImu(raw)
	if err != nil {
		return nil, err
	}
	return ImuRecord{
		Timestamp: timestamp,
		Orientation: QuatJSON{
			X: msg.Orientation.X,
			Y: msg.Orientation.Y,
			Z: msg.Orientation.Z,
			W: msg.Orientation.W,
		},
		AngularVelocity: Vec3JSON{
			X: msg.AngularVelocity.X,
			Y: msg.AngularVelocity.Y,
			Z: msg.AngularVelocity.Z,
		},
		LinearAcceleration: Vec3JSON{
			X: msg.LinearAcceleration.X,
			Y: msg.LinearAcceleration.Y,
			Z: msg.LinearAcceleration.Z,
		},
	}, nil
}

func reshapeOdom(timestamp int64, raw []byte) (interface{}, error) {
	msg, err := DecodeOdometry(raw)
	if err != nil {
		return nil, err
	}
	return OdomRecord{
		Timestamp: timestamp,
		Pose: PoseWithCovarianceJSON{
			Pose: PoseJSON{
				Position: Vec3JSON{
					X: msg.Pose.Pose.Position.X,
					Y: msg.Pose.Pose.Position.Y,
					Z: msg.Pose.Pose.Position.Z,
				},
				Orientation: QuatJSON{
					X: msg.Pose.Pose.Orientation.X,
					Y: msg.Pose.Pose.Orientation.Y,
					Z: msg.Pose.Pose.Orientation.Z,
					W: msg.Pose.Pose.Orientation.W,
				},
			},
			Covariance: msg.Pose.Covariance[:],
		},
		Twist: TwistWithCovarianceJSON{
			Twist: TwistJSON{
				Linear: Vec3JSON{
					X: msg.Twist.Twist.Linear.X,
					Y: msg.Twist.Twist.Linear.Y,
					Z: msg.Twist.Twist.Linear.Z,
				},
				Angular: Vec3JSON{
					X: msg.Twist.Twist.Angular.X,
					Y: msg.Twist.Twist.Angular.Y,
					Z: msg.Twist.Twist.Angular.Z,
				},
			},
			Covariance: msg.Twist.Covariance[:],
		},
	}, nil
}
