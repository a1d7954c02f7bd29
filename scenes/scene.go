package scenes

// SceneChanger lets a scene hand control to another one.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
