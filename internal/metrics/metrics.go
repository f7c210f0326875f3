package metrics

const Namespace = "todo"
