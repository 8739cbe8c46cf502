package depot

type factory struct{}

var Factory factory

func (f factory) NewWorld(opts ...Option) *World {
	return newWorld(opts...)
}

func (f factory) NewHandlePool(capacity int) *HandlePool {
	cfg := defaultConfig()
	return newHandlePool(capacity, cfg.logger)
}

func (f factory) NewCommandBuffer() *CommandBuffer {
	return newCommandBuffer()
}
