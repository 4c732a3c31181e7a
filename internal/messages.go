package internal

// Go representations of the ROS2 message types this tool deserializes.
// Field order follows the .msg definitions exactly; decoding depends on it.

// Message type identifiers as stored in bag connections.
const (
	ImuMsgType      = "sensor_msgs/msg/Imu"
	OdometryMsgType = "nav_msgs/msg/Odometry"
)

// Time is builtin_interfaces/msg/Time
type Time struct {
	Sec     int32
	Nanosec uint32
}

// Header is std_msgs/msg/Header
type Header struct {
	Stamp   Time
	FrameID string
}

// Vector3 is geometry_msgs/msg/Vector3
type Vector3 struct {
	X, Y, Z float64
}

// Point is geometry_msgs/msg/Point
type Point struct {
	X, Y, Z float64
}

// Quaternion is geometry_msgs/msg/Quaternion
type Quaternion struct {
	X, Y, Z, W float64
}

// Pose is geometry_msgs/msg/Pose
type Pose struct {
	Position    Point
	Orientation Quaternion
}

// PoseWithCovariance is geometry_msgs/msg/PoseWithCovariance
type PoseWithCovariance struct {
	Pose       Pose
	Covariance [36]float64
}

// Twist is geometry_msgs/msg/Twist
type Twist struct {
	Linear  Vector3
	Angular Vector3
}

// TwistWithCovariance is geometry_msgs/msg/TwistWithCovariance
type TwistWithCovariance struct {
	Twist      Twist
	Covariance [36]float64
}

// Imu is sensor_msgs/msg/Imu
type Imu struct {
	Header                       Header
	Orientation                  Quaternion
	OrientationCovariance        [9]float64
	AngularVelocity              Vector3
	AngularVelocityCovariance    [9]float64
	LinearAcceleration           Vector3
	LinearAccelerationCovariance [9]float64
}

// Odometry is nav_msgs/msg/Odometry
type Odometry struct {
	Header       Header
	ChildFrameID string
	Pose         PoseWithCovariance
	Twist        TwistWithCovariance
}

func decodeTime(d *cdrDecoder) (t Time, err error) {
	if t.Sec, err = d.int32(); err != nil {
		return t, err
	}
	t.Nanosec, err = d.uint32()
	return t, err
}

func decodeHeader(d *cdrDecoder) (h Header, err error) {
	if h.Stamp, err = decodeTime(d); err != nil {
		return h, err
	}
	h.FrameID, err = d.string()
	return h, err
}

func decodeVector3(d *cdrDecoder) (v Vector3, err error) {
	if v.X, err = d.float64(); err != nil {
		return v, err
	}
	if v.Y, err = d.float64(); err != nil {
		return v, err
	}
	v.Z, err = d.float64()
	return v, err
}

func decodePoint(d *cdrDecoder) (p Point, err error) {
	v, err := decodeVector3(d)
	return Point(v), err
}

func decodeQuaternion(d *cdrDecoder) (q Quaternion, err error) {
	if q.X, err = d.float64(); err != nil {
		return q, err
	}
	if q.Y, err = d.float64(); err != nil {
		return q, err
	}
	if q.Z, err = d.float64(); err != nil {
		return q, err
	}
	q.W, err = d.float64()
	return q, err
}

// DecodeImu deserializes a sensor_msgs/msg/Imu payload from CDR.
func DecodeImu(raw []byte) (*Imu, error) {
	d, err := newCDRDecoder(raw)
	if err != nil {
		return nil, err
	}
	var msg Imu
	if msg.Header, err = decodeHeader(d); err != nil {
		return nil, err
	}
	if msg.Orientation, err = decodeQuaternion(d); err != nil {
		return nil, err
	}
	if err = d.float64Array(msg.OrientationCovariance[:]); err != nil {
		return nil, err
	}
	if msg.AngularVelocity, err = decodeVector3(d); err != nil {
		return nil, err
	}
	if err = d.float64Array(msg.AngularVelocityCovariance[:]); err != nil {
		return nil, err
	}
	if msg.LinearAcceleration, err = decodeVector3(d); err != nil {
		return nil, err
	}
	if err = d.float64Array(msg.LinearAccelerationCovariance[:]); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DecodeOdometry deserializes a nav_msgs/msg/Odometry payload from CDR.
func DecodeOdometry(raw []byte) (*Odometry, error) {
	d, err := newCDRDecoder(raw)
	if err != nil {
		return nil, err
	}
	var msg Odometry
	if msg.Header, err = decodeHeader(d); err != nil {
		return nil, err
	}
	if msg.ChildFrameID, err = d.string(); err != nil {
		return nil, err
	}
	if msg.Pose.Pose.Position, err = decodePoint(d); err != nil {
		return nil, err
	}
	if msg.Pose.Pose.Orientation, err = decodeQuaternion(d); err != nil {
		return nil, err
	}
	if err = d.float64Array(msg.Pose.Covariance[:]); err != nil {
		return nil, err
	}
	if msg.Twist.Twist.Linear, err = decodeVector3(d); err != nil {
		return nil, err
	}
	if msg.Twist.Twist.Angular, err = decodeVector3(d); err != nil {
		return nil, err
	}
	if err = d.float64Array(msg.Twist.Covariance[:]); err != nil {
		return nil, err
	}
	return &msg, nil
}
